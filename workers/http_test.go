package workers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/stretchr/testify/require"

	"gotbtcgateway/config"
	"gotbtcgateway/derive"
	"gotbtcgateway/redis"
	"gotbtcgateway/types"
	"gotbtcgateway/workers/handlers"
)

func newTestServer(t *testing.T) (*httptest.Server, *redis.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := redis.NewStore(mr.Addr(), 0)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewRouter(&handlers.API{Network: config.Mainnet, Reader: store, Upstream: store}))
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealthAndAddresses(t *testing.T) {
	srv, _ := newTestServer(t)

	var health handlers.APIHealthResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "mainnet", health.Network)
	require.Equal(t, config.Mainnet.GatewayProgramID.String(), health.Gateway)

	var addrs handlers.APIAddressesResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/addresses", &addrs))
	require.Equal(t, "mainnet", addrs.Network)
	require.Equal(t, uint16(2), addrs.ForeignTokenChain)
	require.Equal(t, derive.All(config.Mainnet), addrs.Addresses)
}

func TestCustodianViewsBeforeAndAfterCommit(t *testing.T) {
	srv, store := newTestServer(t)

	var state handlers.APIStateResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/state", &state))
	require.Equal(t, "uninitialized", state.State)

	var missing handlers.APIResponse
	require.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/custodian", &missing))
	require.Equal(t, "error", missing.Status)

	addrs := derive.All(config.Mainnet)
	record := &types.Custodian{
		Bump:             addrs.Custodian.Bump,
		Authority:        solana.NewWallet().PublicKey(),
		TBTCMint:         addrs.TBTCMint.Address,
		WrappedTBTCMint:  addrs.WrappedTBTCMint.Address,
		WrappedTBTCToken: addrs.WrappedTBTCToken.Address,
		MintingLimit:     1_000_000,
	}
	data, err := types.EncodeCustodian(record)
	require.NoError(t, err)
	require.NoError(t, store.CreateAccounts(context.Background(), nil, &types.Account{
		Address: addrs.Custodian.Address,
		Owner:   config.Mainnet.GatewayProgramID,
		Data:    data,
	}))

	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/state", &state))
	require.Equal(t, "committed", state.State)

	var view handlers.APICustodianResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/custodian", &view))
	require.Equal(t, addrs.Custodian.Address.String(), view.Address)
	require.Equal(t, record, view.Record)
}

func putMint(t *testing.T, store *redis.Store, addr solana.PublicKey, authority solana.PublicKey) {
	t.Helper()
	data, err := types.EncodeMint(&token.Mint{MintAuthority: &authority, Decimals: 8, IsInitialized: true})
	require.NoError(t, err)
	require.NoError(t, store.CreateAccounts(context.Background(), nil, &types.Account{
		Address: addr,
		Owner:   solana.TokenProgramID,
		Data:    data,
	}))
}

func TestPrerequisites(t *testing.T) {
	srv, store := newTestServer(t)

	var resp handlers.APIPrerequisitesResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/prerequisites", &resp))
	require.False(t, resp.Ready)
	require.Equal(t, "PrerequisiteNotInitialized", resp.Class)

	putMint(t, store, derive.TBTCMint(config.Mainnet).Address, solana.NewWallet().PublicKey())
	putMint(t, store, derive.WrappedTBTCMint(config.Mainnet).Address, derive.TokenBridgeMintSigner(config.Mainnet).Address)

	resp = handlers.APIPrerequisitesResponse{}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/prerequisites", &resp))
	require.True(t, resp.Ready)
	require.Empty(t, resp.Class)
}
