package types

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func sampleCustodian() *Custodian {
	return &Custodian{
		Bump:                    254,
		Authority:               solana.NewWallet().PublicKey(),
		TBTCMint:                solana.NewWallet().PublicKey(),
		WrappedTBTCMint:         solana.NewWallet().PublicKey(),
		WrappedTBTCToken:        solana.NewWallet().PublicKey(),
		TokenBridgeSender:       solana.NewWallet().PublicKey(),
		TokenBridgeSenderBump:   253,
		TokenBridgeRedeemer:     solana.NewWallet().PublicKey(),
		TokenBridgeRedeemerBump: 255,
		MintingLimit:            1_000_000,
	}
}

func TestCustodianEncoding(t *testing.T) {
	c := sampleCustodian()
	data, err := EncodeCustodian(c)
	require.NoError(t, err)
	require.Len(t, data, CustodianAccountSize)
	require.Equal(t, CustodianDiscriminator[:], data[:8])
	require.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[len(data)-8:]))

	decoded, err := DecodeCustodian(data)
	require.NoError(t, err)
	require.Equal(t, c, decoded)
}

func TestDecodeCustodianRejectsForeignAccount(t *testing.T) {
	data, err := EncodeCustodian(sampleCustodian())
	require.NoError(t, err)

	data[0] ^= 0xff
	_, err = DecodeCustodian(data)
	require.ErrorIs(t, err, ErrInvalidCustodianData)

	_, err = DecodeCustodian(data[:CustodianAccountSize-1])
	require.ErrorIs(t, err, ErrInvalidCustodianData)
}

func TestCustodianJSONUsesBase58(t *testing.T) {
	c := sampleCustodian()
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Equal(t, c.TBTCMint.String(), view["tbtcMint"])
	require.Equal(t, float64(1_000_000), view["mintingLimit"])
}

func TestInitStateString(t *testing.T) {
	require.Equal(t, "uninitialized", Uninitialized.String())
	require.Equal(t, "verifying", Verifying.String())
	require.Equal(t, "committed", Committed.String())
	require.Equal(t, "unknown", InitState(42).String())
}
