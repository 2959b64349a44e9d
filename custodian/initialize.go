// Package custodian binds a gateway deployment to its accounts.
//
// Initialize runs once per deployment: it recomputes every address from the
// compiled-in network constants, rejects any presented account that differs,
// requires the tBTC and wrapped tBTC mints to exist, then atomically creates
// the custodian record and the escrow token account. Every failure leaves the
// store untouched.
package custodian

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"gotbtcgateway/config"
	"gotbtcgateway/derive"
	"gotbtcgateway/types"
)

var ErrNotInitialized = errors.New("custodian not initialized")

// AccountStore is durable address-indexed storage with all-or-nothing
// create-if-absent. CreateAccounts returns an error wrapping
// types.ErrAccountExists when any target address is taken.
type AccountStore interface {
	AccountReader
	CreateAccounts(ctx context.Context, rec *types.InitializationRecord, accounts ...*types.Account) error
}

type Initializer struct {
	Network config.Network
	// where the tBTC and wrapped tBTC mints are read from
	Upstream AccountReader
	Store    AccountStore
	// 0 means no ceiling
	MintingLimitCeiling uint64
}

func NewInitializer(n config.Network, upstream AccountReader, store AccountStore, ceiling uint64) *Initializer {
	return &Initializer{
		Network:             n,
		Upstream:            upstream,
		Store:               store,
		MintingLimitCeiling: ceiling,
	}
}

// Initialize creates the custodian record. mintingLimit must be provided.
func (in *Initializer) Initialize(ctx context.Context, accts Accounts, mintingLimit *uint64) (*types.Custodian, error) {
	custodianAddr := derive.Custodian(in.Network).Address
	logger := log.New("custodian", custodianAddr, "network", in.Network.Name)
	logger.Info("Custodian initialization", "state", types.Verifying, "authority", accts.Authority)

	record, err := in.initialize(ctx, custodianAddr, accts, mintingLimit)
	if err != nil {
		logger.Warn("Custodian initialization failed", "state", types.Uninitialized, "class", Class(err), "err", err)
		return nil, err
	}

	logger.Info("Custodian initialization", "state", types.Committed, "mintingLimit", record.MintingLimit)
	return record, nil
}

func (in *Initializer) initialize(ctx context.Context, custodianAddr solana.PublicKey, accts Accounts, mintingLimit *uint64) (*types.Custodian, error) {
	existing, err := in.Store.GetAccount(ctx, custodianAddr)
	if err != nil {
		return nil, fmt.Errorf("reading custodian %s: %w", custodianAddr, err)
	}
	if existing != nil {
		return nil, ErrAlreadyInitialized
	}

	verifier := &Verifier{Network: in.Network, Upstream: in.Upstream}
	verified, err := verifier.Verify(ctx, accts)
	if err != nil {
		return nil, err
	}

	record, err := Build(verified, mintingLimit, in.MintingLimitCeiling)
	if err != nil {
		return nil, err
	}

	accounts, err := accountsFor(in.Network, custodianAddr, record)
	if err != nil {
		return nil, err
	}

	receipt := &types.InitializationRecord{
		ID:           uuid.New().String(),
		Authority:    record.Authority.String(),
		Custodian:    custodianAddr.String(),
		MintingLimit: record.MintingLimit,
		TsCreated:    time.Now().Unix(),
	}
	if err := in.Store.CreateAccounts(ctx, receipt, accounts...); err != nil {
		if errors.Is(err, types.ErrAccountExists) {
			return nil, fmt.Errorf("%w: %v", ErrAlreadyInitialized, err)
		}
		return nil, err
	}
	return record, nil
}

// Load reads the committed record from its derived address.
func Load(ctx context.Context, n config.Network, r AccountReader) (*types.Custodian, error) {
	addr := derive.Custodian(n).Address
	acc, err := r.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrNotInitialized
	}
	if !acc.Owner.Equals(n.GatewayProgramID) {
		return nil, fmt.Errorf("custodian %s owned by %s", addr, acc.Owner)
	}
	return types.DecodeCustodian(acc.Data)
}

// State reports Committed once the record exists, Uninitialized otherwise.
func State(ctx context.Context, n config.Network, r AccountReader) (types.InitState, error) {
	_, err := Load(ctx, n, r)
	switch {
	case err == nil:
		return types.Committed, nil
	case errors.Is(err, ErrNotInitialized):
		return types.Uninitialized, nil
	}
	return types.Uninitialized, err
}
