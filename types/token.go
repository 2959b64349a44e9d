package types

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go/programs/token"
)

// SPL token program account sizes
const (
	MintAccountSize  = 82
	TokenAccountSize = 165
)

var ErrInvalidTokenData = errors.New("invalid token program account data")

func EncodeMint(m *token.Mint) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := m.MarshalWithEncoder(bin.NewBinEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMint accepts exactly one mint layout, a token account or any other
// longer buffer that merely starts like a mint is rejected.
func DecodeMint(data []byte) (*token.Mint, error) {
	if len(data) != MintAccountSize {
		return nil, fmt.Errorf("%w: mint is %d bytes, got %d", ErrInvalidTokenData, MintAccountSize, len(data))
	}
	var m token.Mint
	if err := m.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &m, nil
}

func EncodeTokenAccount(a *token.Account) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := a.MarshalWithEncoder(bin.NewBinEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeTokenAccount(data []byte) (*token.Account, error) {
	if len(data) != TokenAccountSize {
		return nil, fmt.Errorf("%w: token account is %d bytes, got %d", ErrInvalidTokenData, TokenAccountSize, len(data))
	}
	var a token.Account
	if err := a.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &a, nil
}
