package SOLRPC

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

func fakeCluster(t *testing.T, value interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "getAccountInfo", req.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result": map[string]interface{}{
				"context": map[string]interface{}{"slot": 1},
				"value":   value,
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func brokenEndpoint(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetAccountFallsBackAcrossEndpoints(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	good := fakeCluster(t, map[string]interface{}{
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": false,
		"lamports":   1461600,
		"owner":      solana.TokenProgramID.String(),
		"rentEpoch":  0,
	})
	addr := solana.NewWallet().PublicKey()

	reader := NewReader([]string{brokenEndpoint(t).URL, good.URL})
	acc, err := reader.GetAccount(context.Background(), addr)
	require.NoError(t, err)
	require.NotNil(t, acc)
	require.Equal(t, addr, acc.Address)
	require.Equal(t, solana.TokenProgramID, acc.Owner)
	require.Equal(t, uint64(1461600), acc.Lamports)
	require.Equal(t, data, acc.Data)
}

func TestGetAccountMissing(t *testing.T) {
	reader := NewReader([]string{fakeCluster(t, nil).URL})
	acc, err := reader.GetAccount(context.Background(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	require.Nil(t, acc)
}

func TestGetAccountAllEndpointsDown(t *testing.T) {
	reader := NewReader([]string{brokenEndpoint(t).URL})
	_, err := reader.GetAccount(context.Background(), solana.NewWallet().PublicKey())
	require.Error(t, err)

	_, err = NewReader(nil).GetAccount(context.Background(), solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, ErrNoEndpoints)
}
