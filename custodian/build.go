package custodian

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"gotbtcgateway/config"
	"gotbtcgateway/types"
)

// Build maps verified addresses and the minting limit onto a candidate record.
// mintingLimit has no default, nil is rejected. ceiling 0 means unbounded.
func Build(v *Verified, mintingLimit *uint64, ceiling uint64) (*types.Custodian, error) {
	if mintingLimit == nil {
		return nil, fmt.Errorf("%w: minting limit not provided", ErrInvalidConfiguration)
	}
	if ceiling > 0 && *mintingLimit > ceiling {
		return nil, fmt.Errorf("%w: minting limit %d above ceiling %d", ErrInvalidConfiguration, *mintingLimit, ceiling)
	}

	addrs := v.Addresses
	// the redeemer field holds the redeemer PDA, not the sender key the first deployment wrote there
	return &types.Custodian{
		Bump:                    addrs.Custodian.Bump,
		Authority:               v.Authority,
		TBTCMint:                addrs.TBTCMint.Address,
		WrappedTBTCMint:         addrs.WrappedTBTCMint.Address,
		WrappedTBTCToken:        addrs.WrappedTBTCToken.Address,
		TokenBridgeSender:       addrs.TokenBridgeSender.Address,
		TokenBridgeSenderBump:   addrs.TokenBridgeSender.Bump,
		TokenBridgeRedeemer:     addrs.TokenBridgeRedeemer.Address,
		TokenBridgeRedeemerBump: addrs.TokenBridgeRedeemer.Bump,
		MintingLimit:            *mintingLimit,
	}, nil
}

// rent-exempt balance: (128 bytes overhead + size) * 3480 lamports/byte-year * 2 years
func RentExemptLamports(size int) uint64 {
	return uint64(128+size) * 3480 * 2
}

// accountsFor lays out the two accounts the initialization creates: the
// custodian itself and the escrow token account holding wrapped tBTC.
func accountsFor(n config.Network, custodianAddr solana.PublicKey, c *types.Custodian) ([]*types.Account, error) {
	custodianData, err := types.EncodeCustodian(c)
	if err != nil {
		return nil, err
	}
	escrowData, err := types.EncodeTokenAccount(&token.Account{
		Mint:  c.WrappedTBTCMint,
		Owner: c.Authority,
		State: token.Initialized,
	})
	if err != nil {
		return nil, err
	}

	return []*types.Account{
		{
			Address:  custodianAddr,
			Owner:    n.GatewayProgramID,
			Lamports: RentExemptLamports(len(custodianData)),
			Data:     custodianData,
		},
		{
			Address:  c.WrappedTBTCToken,
			Owner:    solana.TokenProgramID,
			Lamports: RentExemptLamports(len(escrowData)),
			Data:     escrowData,
		},
	}, nil
}
