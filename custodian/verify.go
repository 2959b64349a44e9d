package custodian

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gotbtcgateway/config"
	"gotbtcgateway/derive"
	"gotbtcgateway/types"
)

// AccountReader reads a single account. A nil account with a nil error means
// nothing exists at addr.
type AccountReader interface {
	GetAccount(ctx context.Context, addr solana.PublicKey) (*types.Account, error)
}

// Accounts are the account handles a caller presents to Initialize. None of
// them is trusted: each is compared with the address derived for its role.
type Accounts struct {
	Authority           solana.PublicKey
	Custodian           solana.PublicKey
	TBTCMint            solana.PublicKey
	WrappedTBTCMint     solana.PublicKey
	WrappedTBTCToken    solana.PublicKey
	TokenBridgeSender   solana.PublicKey
	TokenBridgeRedeemer solana.PublicKey
}

func (a Accounts) presented(role derive.Role) solana.PublicKey {
	switch role {
	case derive.RoleCustodian:
		return a.Custodian
	case derive.RoleTBTCMint:
		return a.TBTCMint
	case derive.RoleWrappedTBTCMint:
		return a.WrappedTBTCMint
	case derive.RoleWrappedTBTCToken:
		return a.WrappedTBTCToken
	case derive.RoleTokenBridgeSender:
		return a.TokenBridgeSender
	case derive.RoleTokenBridgeRedeemer:
		return a.TokenBridgeRedeemer
	}
	return solana.PublicKey{}
}

// ExpectedAccounts fills in every derived handle for authority, which is what
// an honest caller presents.
func ExpectedAccounts(n config.Network, authority solana.PublicKey) Accounts {
	addrs := derive.All(n)
	return Accounts{
		Authority:           authority,
		Custodian:           addrs.Custodian.Address,
		TBTCMint:            addrs.TBTCMint.Address,
		WrappedTBTCMint:     addrs.WrappedTBTCMint.Address,
		WrappedTBTCToken:    addrs.WrappedTBTCToken.Address,
		TokenBridgeSender:   addrs.TokenBridgeSender.Address,
		TokenBridgeRedeemer: addrs.TokenBridgeRedeemer.Address,
	}
}

// Verified is the output of a successful Verify: the derived addresses with
// their bumps, all of which matched what the caller presented.
type Verified struct {
	Authority solana.PublicKey
	Addresses derive.Addresses
}

// Verifier checks presented accounts against derivation and checks that the
// tBTC program and the token bridge have created the mints we bind to.
type Verifier struct {
	Network  config.Network
	Upstream AccountReader
}

func (v *Verifier) Verify(ctx context.Context, accts Accounts) (*Verified, error) {
	if accts.Authority.IsZero() {
		return nil, fmt.Errorf("%w: authority not provided", ErrInvalidConfiguration)
	}

	addrs := derive.All(v.Network)
	for _, role := range derive.Roles {
		expected := addrs.Get(role).Address
		if presented := accts.presented(role); !presented.Equals(expected) {
			return nil, &MismatchError{Role: role, Expected: expected, Presented: presented}
		}
	}

	if err := v.Prerequisites(ctx); err != nil {
		return nil, err
	}
	return &Verified{Authority: accts.Authority, Addresses: addrs}, nil
}

// Prerequisites checks only the upstream state: the tBTC mint exists and the
// token bridge has created the wrapped tBTC mint under its own mint signer.
func (v *Verifier) Prerequisites(ctx context.Context) error {
	if err := v.requireMint(ctx, derive.RoleTBTCMint, derive.TBTCMint(v.Network).Address, nil); err != nil {
		return err
	}
	mintSigner := derive.TokenBridgeMintSigner(v.Network).Address
	return v.requireMint(ctx, derive.RoleWrappedTBTCMint, derive.WrappedTBTCMint(v.Network).Address, &mintSigner)
}

// requireMint fails unless addr holds an initialized SPL mint, optionally
// with the given mint authority.
func (v *Verifier) requireMint(ctx context.Context, role derive.Role, addr solana.PublicKey, authority *solana.PublicKey) error {
	acc, err := v.Upstream.GetAccount(ctx, addr)
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", role, addr, err)
	}
	if acc == nil {
		return &PrerequisiteError{Role: role, Address: addr, Reason: "account does not exist"}
	}
	if !acc.Owner.Equals(solana.TokenProgramID) {
		return &PrerequisiteError{Role: role, Address: addr, Reason: "not owned by the token program"}
	}
	mint, err := types.DecodeMint(acc.Data)
	if err != nil {
		return &PrerequisiteError{Role: role, Address: addr, Reason: "not a mint account"}
	}
	if !mint.IsInitialized {
		return &PrerequisiteError{Role: role, Address: addr, Reason: "mint not initialized"}
	}
	if authority != nil && (mint.MintAuthority == nil || !mint.MintAuthority.Equals(*authority)) {
		return &MismatchError{Role: role + ".mint_authority", Expected: *authority, Presented: keyOrZero(mint.MintAuthority)}
	}
	return nil
}

func keyOrZero(k *solana.PublicKey) solana.PublicKey {
	if k == nil {
		return solana.PublicKey{}
	}
	return *k
}
