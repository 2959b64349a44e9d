package types

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

// ErrAccountExists is returned by account stores when a create targets an
// address that is already taken. Nothing is written in that case.
var ErrAccountExists = errors.New("account already exists")

// Account is one entry of the address-indexed ledger, the same shape
// whether it was read from a cluster or from the local store.
type Account struct {
	Address  solana.PublicKey `json:"address"`
	Owner    solana.PublicKey `json:"owner"`
	Lamports uint64           `json:"lamports"`
	Data     []byte           `json:"data"`
}

// InitState is the lifecycle of the custodian initialization.
// Verifying is never persisted, only observed inside a running Initialize call.
type InitState int

const (
	Uninitialized InitState = iota
	Verifying
	Committed
)

func (s InitState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Verifying:
		return "verifying"
	case Committed:
		return "committed"
	}
	return "unknown"
}

// InitializationRecord is the receipt of the one successful initialization,
// stored as a Redis list entry next to the accounts it created
type InitializationRecord struct {
	ID           string
	Authority    string
	Custodian    string
	MintingLimit uint64
	TsCreated    int64
}
