package SOLRPC

import (
	"context"
	"errors"

	"gotbtcgateway/types"

	"github.com/ethereum/go-ethereum/log"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var ErrNoEndpoints = errors.New("no Solana RPC endpoints configured")

// WithClient runs f against each endpoint in turn until one succeeds.
func WithClient[T any](rpcList []string, f func(client *rpc.Client) (T, error)) (res T, err error) {
	err = ErrNoEndpoints
	for _, url := range rpcList {
		client := rpc.New(url)
		res, err = f(client)
		client.Close()
		if err == nil {
			return
		}
		log.Warn("Solana RPC call failed", "url", url, "err", err)
	}
	return
}

// Reader reads upstream accounts (tBTC mint, wrapped mint) from the cluster.
type Reader struct {
	RPCList []string
}

func NewReader(rpcList []string) *Reader {
	return &Reader{RPCList: rpcList}
}

// GetAccount returns nil without error when the account does not exist.
func (r *Reader) GetAccount(ctx context.Context, addr solana.PublicKey) (*types.Account, error) {
	return WithClient(r.RPCList, func(client *rpc.Client) (*types.Account, error) {
		out, err := client.GetAccountInfo(ctx, addr)
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if out == nil || out.Value == nil {
			return nil, nil
		}
		acc := &types.Account{
			Address:  addr,
			Owner:    out.Value.Owner,
			Lamports: out.Value.Lamports,
		}
		if out.Value.Data != nil {
			acc.Data = out.Value.Data.GetBinary()
		}
		return acc, nil
	})
}
