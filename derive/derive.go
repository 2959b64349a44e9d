// Package derive computes every program-derived address the gateway binds to.
//
// Nothing here takes runtime input beyond the compiled-in config.Network, so any
// component (or a test) can recompute the address that belongs to a role
// instead of trusting an account handed to it.
package derive

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"gotbtcgateway/config"
)

var (
	SeedCustodian    = []byte("custodian")
	SeedTBTCMint     = []byte("tbtc-mint")
	SeedWrappedMint  = []byte("wrapped")
	SeedWrappedToken = []byte("wrapped-token")
	SeedSender       = []byte("sender")
	SeedRedeemer     = []byte("redeemer")
	SeedMintSigner   = []byte("mint_signer")
)

type Role string

const (
	RoleCustodian           Role = "custodian"
	RoleTBTCMint            Role = "tbtc_mint"
	RoleWrappedTBTCMint     Role = "wrapped_tbtc_mint"
	RoleWrappedTBTCToken    Role = "wrapped_tbtc_token"
	RoleTokenBridgeSender   Role = "token_bridge_sender"
	RoleTokenBridgeRedeemer Role = "token_bridge_redeemer"

	// authority of every wrapped mint, owned by the token bridge; not part of the record
	RoleTokenBridgeMintSigner Role = "token_bridge_mint_signer"
)

// Roles lists every role stored in the custodian record, in record order.
var Roles = []Role{
	RoleCustodian,
	RoleTBTCMint,
	RoleWrappedTBTCMint,
	RoleWrappedTBTCToken,
	RoleTokenBridgeSender,
	RoleTokenBridgeRedeemer,
}

// PDA is a derived address with the bump that proves it.
type PDA struct {
	Address solana.PublicKey `json:"address"`
	Bump    uint8            `json:"bump"`
}

// Seeds returns the owning program and seed list for a role.
func Seeds(n config.Network, role Role) (solana.PublicKey, [][]byte) {
	switch role {
	case RoleCustodian:
		return n.GatewayProgramID, [][]byte{SeedCustodian}
	case RoleTBTCMint:
		return n.TBTCProgramID, [][]byte{SeedTBTCMint}
	case RoleWrappedTBTCMint:
		chain := make([]byte, 2)
		binary.BigEndian.PutUint16(chain, n.ForeignTokenChain)
		return n.TokenBridgeProgramID, [][]byte{SeedWrappedMint, chain, n.ForeignTokenAddress[:]}
	case RoleWrappedTBTCToken:
		return n.GatewayProgramID, [][]byte{SeedWrappedToken}
	case RoleTokenBridgeSender:
		return n.GatewayProgramID, [][]byte{SeedSender}
	case RoleTokenBridgeRedeemer:
		return n.GatewayProgramID, [][]byte{SeedRedeemer}
	case RoleTokenBridgeMintSigner:
		return n.TokenBridgeProgramID, [][]byte{SeedMintSigner}
	}
	panic(fmt.Sprintf("derive: unknown role %q", role))
}

// For derives the address of a role. Running out of bumps cannot happen for
// these fixed seeds, so a failure is a broken build and panics.
func For(n config.Network, role Role) PDA {
	programID, seeds := Seeds(n, role)
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		panic(fmt.Sprintf("failed to derive %s PDA: %v", role, err))
	}
	return PDA{Address: addr, Bump: bump}
}

// Prove reports whether pda is the address of role re-created from its stored bump.
func Prove(n config.Network, role Role, pda PDA) bool {
	programID, seeds := Seeds(n, role)
	addr, err := solana.CreateProgramAddress(append(seeds, []byte{pda.Bump}), programID)
	if err != nil {
		return false
	}
	return addr.Equals(pda.Address)
}

func Custodian(n config.Network) PDA           { return For(n, RoleCustodian) }
func TBTCMint(n config.Network) PDA            { return For(n, RoleTBTCMint) }
func WrappedTBTCMint(n config.Network) PDA     { return For(n, RoleWrappedTBTCMint) }
func WrappedTBTCToken(n config.Network) PDA    { return For(n, RoleWrappedTBTCToken) }
func TokenBridgeSender(n config.Network) PDA   { return For(n, RoleTokenBridgeSender) }
func TokenBridgeRedeemer(n config.Network) PDA { return For(n, RoleTokenBridgeRedeemer) }

func TokenBridgeMintSigner(n config.Network) PDA { return For(n, RoleTokenBridgeMintSigner) }

// Addresses is the full set of PDAs of one deployment.
type Addresses struct {
	Custodian           PDA `json:"custodian"`
	TBTCMint            PDA `json:"tbtcMint"`
	WrappedTBTCMint     PDA `json:"wrappedTbtcMint"`
	WrappedTBTCToken    PDA `json:"wrappedTbtcToken"`
	TokenBridgeSender   PDA `json:"tokenBridgeSender"`
	TokenBridgeRedeemer PDA `json:"tokenBridgeRedeemer"`
}

func All(n config.Network) Addresses {
	return Addresses{
		Custodian:           Custodian(n),
		TBTCMint:            TBTCMint(n),
		WrappedTBTCMint:     WrappedTBTCMint(n),
		WrappedTBTCToken:    WrappedTBTCToken(n),
		TokenBridgeSender:   TokenBridgeSender(n),
		TokenBridgeRedeemer: TokenBridgeRedeemer(n),
	}
}

func (a Addresses) Get(role Role) PDA {
	switch role {
	case RoleCustodian:
		return a.Custodian
	case RoleTBTCMint:
		return a.TBTCMint
	case RoleWrappedTBTCMint:
		return a.WrappedTBTCMint
	case RoleWrappedTBTCToken:
		return a.WrappedTBTCToken
	case RoleTokenBridgeSender:
		return a.TokenBridgeSender
	case RoleTokenBridgeRedeemer:
		return a.TokenBridgeRedeemer
	}
	panic(fmt.Sprintf("derive: unknown role %q", role))
}
