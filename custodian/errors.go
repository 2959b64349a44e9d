package custodian

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gotbtcgateway/derive"
)

// Initialization failures. Callers branch on these with errors.Is; every
// error returned by Initialize wraps exactly one of them or is a storage fault.
var (
	ErrDerivationMismatch         = errors.New("derivation mismatch")
	ErrPrerequisiteNotInitialized = errors.New("prerequisite not initialized")
	ErrAlreadyInitialized         = errors.New("custodian already initialized")
	ErrInvalidConfiguration       = errors.New("invalid configuration")
)

// MismatchError names the role whose presented account is not the derived one.
type MismatchError struct {
	Role      derive.Role
	Expected  solana.PublicKey
	Presented solana.PublicKey
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: presented %s, derived %s", e.Role, e.Presented, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrDerivationMismatch
}

// PrerequisiteError names the upstream account that is missing or not usable yet.
type PrerequisiteError struct {
	Role    derive.Role
	Address solana.PublicKey
	Reason  string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Role, e.Address, e.Reason)
}

func (e *PrerequisiteError) Unwrap() error {
	return ErrPrerequisiteNotInitialized
}

// Class returns the taxonomy name of err for logs and API responses.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDerivationMismatch):
		return "DerivationMismatch"
	case errors.Is(err, ErrPrerequisiteNotInitialized):
		return "PrerequisiteNotInitialized"
	case errors.Is(err, ErrAlreadyInitialized):
		return "AlreadyInitialized"
	case errors.Is(err, ErrInvalidConfiguration):
		return "InvalidConfiguration"
	}
	return "Internal"
}
