package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Custodian is the root-of-trust record binding a gateway deployment to its
// tBTC mint, the wormhole-wrapped tBTC mint, the escrow account and the token
// bridge authorities. Every address in it is a PDA recomputed at initialization.
type Custodian struct {
	Bump                    uint8            `json:"bump"`
	Authority               solana.PublicKey `json:"authority"`
	TBTCMint                solana.PublicKey `json:"tbtcMint"`
	WrappedTBTCMint         solana.PublicKey `json:"wrappedTbtcMint"`
	WrappedTBTCToken        solana.PublicKey `json:"wrappedTbtcToken"`
	TokenBridgeSender       solana.PublicKey `json:"tokenBridgeSender"`
	TokenBridgeSenderBump   uint8            `json:"tokenBridgeSenderBump"`
	TokenBridgeRedeemer     solana.PublicKey `json:"tokenBridgeRedeemer"`
	TokenBridgeRedeemerBump uint8            `json:"tokenBridgeRedeemerBump"`
	MintingLimit            uint64           `json:"mintingLimit"`
}

// discriminator (8) + 3 bumps + 6 keys + minting limit
const CustodianAccountSize = 8 + 3 + 6*solana.PublicKeyLength + 8

var CustodianDiscriminator = accountDiscriminator("Custodian")

var ErrInvalidCustodianData = errors.New("invalid custodian account data")

func accountDiscriminator(name string) [8]byte {
	var out [8]byte
	sum := sha256.Sum256([]byte("account:" + name))
	copy(out[:], sum[:8])
	return out
}

func (c Custodian) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteBytes(CustodianDiscriminator[:], false); err != nil {
		return err
	}
	if err := enc.WriteUint8(c.Bump); err != nil {
		return err
	}
	for _, key := range []solana.PublicKey{c.Authority, c.TBTCMint, c.WrappedTBTCMint, c.WrappedTBTCToken, c.TokenBridgeSender} {
		if err := enc.WriteBytes(key[:], false); err != nil {
			return err
		}
	}
	if err := enc.WriteUint8(c.TokenBridgeSenderBump); err != nil {
		return err
	}
	if err := enc.WriteBytes(c.TokenBridgeRedeemer[:], false); err != nil {
		return err
	}
	if err := enc.WriteUint8(c.TokenBridgeRedeemerBump); err != nil {
		return err
	}
	return enc.WriteUint64(c.MintingLimit, binary.LittleEndian)
}

func (c *Custodian) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	disc, err := dec.ReadNBytes(8)
	if err != nil {
		return err
	}
	if !bytes.Equal(disc, CustodianDiscriminator[:]) {
		return fmt.Errorf("%w: discriminator %x", ErrInvalidCustodianData, disc)
	}
	if c.Bump, err = dec.ReadUint8(); err != nil {
		return err
	}
	for _, key := range []*solana.PublicKey{&c.Authority, &c.TBTCMint, &c.WrappedTBTCMint, &c.WrappedTBTCToken, &c.TokenBridgeSender} {
		if err = readKey(dec, key); err != nil {
			return err
		}
	}
	if c.TokenBridgeSenderBump, err = dec.ReadUint8(); err != nil {
		return err
	}
	if err = readKey(dec, &c.TokenBridgeRedeemer); err != nil {
		return err
	}
	if c.TokenBridgeRedeemerBump, err = dec.ReadUint8(); err != nil {
		return err
	}
	c.MintingLimit, err = dec.ReadUint64(binary.LittleEndian)
	return err
}

func readKey(dec *bin.Decoder, key *solana.PublicKey) error {
	b, err := dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(key[:], b)
	return nil
}

// EncodeCustodian returns the account data stored at the custodian address.
func EncodeCustodian(c *Custodian) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := c.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeCustodian(data []byte) (*Custodian, error) {
	if len(data) < CustodianAccountSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidCustodianData, len(data), CustodianAccountSize)
	}
	var c Custodian
	if err := c.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		return nil, err
	}
	return &c, nil
}
