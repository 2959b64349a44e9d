package config

import (
	"errors"
	"fmt"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// Network holds the deploy-time constants of one gateway deployment.
// Exactly one of them is compiled in as Active, see network_mainnet.go and network_devnet.go.
type Network struct {
	Name string

	GatewayProgramID     solana.PublicKey
	TBTCProgramID        solana.PublicKey
	TokenBridgeProgramID solana.PublicKey

	// wormhole chain id and 32-byte left-padded address of the canonical tBTC contract
	ForeignTokenChain   uint16
	ForeignTokenAddress [32]byte
	// checksummed form of ForeignTokenAddress, kept for display and validation
	ForeignTokenEthAddress string
}

// Ethereum is chain 2 in the wormhole chain id registry
const WormholeChainEthereum uint16 = 2

var Mainnet = Network{
	Name:                   "mainnet",
	GatewayProgramID:       solana.MustPublicKeyFromBase58("87MEvHZCXE3ML5rrmh5uX1FbShHmRXXS32xJDGbQ7h5t"),
	TBTCProgramID:          solana.MustPublicKeyFromBase58("Gj93RRt6QB7FjmyokAD5rcMAku7pq3Fk2Aa8y6nNbwsV"),
	TokenBridgeProgramID:   solana.MustPublicKeyFromBase58("wormDTUJ6AWPNvk59vGQbDvGJmqbDTdgWgAqcLBCgUb"),
	ForeignTokenChain:      WormholeChainEthereum,
	ForeignTokenAddress:    foreignToken("0x18084fbA666a33d37592fA2633fD49a74DD93a88"),
	ForeignTokenEthAddress: "0x18084fbA666a33d37592fA2633fD49a74DD93a88",
}

// TODO: point ForeignTokenAddress at the testnet tBTC contract once it is deployed there.
var Devnet = Network{
	Name:                   "devnet",
	GatewayProgramID:       solana.MustPublicKeyFromBase58("87MEvHZCXE3ML5rrmh5uX1FbShHmRXXS32xJDGbQ7h5t"),
	TBTCProgramID:          solana.MustPublicKeyFromBase58("Gj93RRt6QB7FjmyokAD5rcMAku7pq3Fk2Aa8y6nNbwsV"),
	TokenBridgeProgramID:   solana.MustPublicKeyFromBase58("DZnkkTmCiFWfYTfT41X3Rd1kDgozqzxWaHqsw6W4x2oe"),
	ForeignTokenChain:      WormholeChainEthereum,
	ForeignTokenAddress:    foreignToken("0x18084fbA666a33d37592fA2633fD49a74DD93a88"),
	ForeignTokenEthAddress: "0x18084fbA666a33d37592fA2633fD49a74DD93a88",
}

func foreignToken(hexAddress string) [32]byte {
	var out [32]byte
	copy(out[:], common.LeftPadBytes(common.HexToAddress(hexAddress).Bytes(), 32))
	return out
}

// Validate sanity-checks the compiled-in constants, called once at startup.
func (n Network) Validate() error {
	if n.GatewayProgramID.IsZero() || n.TBTCProgramID.IsZero() || n.TokenBridgeProgramID.IsZero() {
		return fmt.Errorf("network %s: program id not set", n.Name)
	}
	if n.GatewayProgramID.Equals(n.TBTCProgramID) || n.GatewayProgramID.Equals(n.TokenBridgeProgramID) {
		return fmt.Errorf("network %s: gateway program id collides with a dependency", n.Name)
	}
	if n.ForeignTokenChain == 0 {
		return fmt.Errorf("network %s: foreign token chain not set", n.Name)
	}
	if err := ethav.Validate(common.HexToAddress(n.ForeignTokenEthAddress).Hex()); err != nil {
		return fmt.Errorf("network %s: foreign token address: %w", n.Name, err)
	}
	if n.ForeignTokenAddress != foreignToken(n.ForeignTokenEthAddress) {
		return errors.New("foreign token address does not match its checksummed form")
	}
	return nil
}
