package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gotbtcgateway/config"
	"gotbtcgateway/types"

	"github.com/ethereum/go-ethereum/log"
	"github.com/gagliardetto/solana-go"
	"github.com/gomodule/redigo/redis"
)

// Store is the address-indexed account storage. Accounts are JSON values
// under account:<base58 address>.
type Store struct {
	pool *redis.Pool
}

func timeoutDialOptions(db int) []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
		redis.DialDatabase(db),
	}
}

func NewStore(addr string, db int) *Store {
	return &Store{
		pool: &redis.Pool{
			MaxIdle: 5,
			Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", addr, timeoutDialOptions(db)...) },
		},
	}
}

// Init connects to the Redis configured in config.Config.
func Init() *Store {
	redisAddr := fmt.Sprintf("%s:%d", config.Config.Server.RedisHost, config.Config.Server.RedisPort)
	return NewStore(redisAddr, config.Config.Server.RedisDB)
}

func (s *Store) Close() error {
	return s.pool.Close()
}

func accountKey(addr solana.PublicKey) string {
	return config.RedisAccountPrefix + addr.String()
}

// GetAccount returns nil without error when nothing is stored at addr.
func (s *Store) GetAccount(ctx context.Context, addr solana.PublicKey) (*types.Account, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	raw, err := redis.Bytes(conn.Do("GET", accountKey(addr)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		log.Error("Redis GET failed", "address", addr, "err", err)
		return nil, err
	}

	var acc types.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("cannot unmarshal account %s: %w", addr, err)
	}
	return &acc, nil
}

// all keys but the last are accounts, the last one is the init log list
var createScript = redis.NewScript(-1, `
local n = #KEYS - 1
for i = 1, n do
  if redis.call('EXISTS', KEYS[i]) == 1 then
    return 0
  end
end
for i = 1, n do
  redis.call('SET', KEYS[i], ARGV[i])
end
if ARGV[n + 1] ~= '' then
  redis.call('RPUSH', KEYS[n + 1], ARGV[n + 1])
end
return 1
`)

// CreateAccounts stores all accounts, and appends rec to the init log when it
// is not nil, as one atomic step. If any address is already occupied nothing
// is written and types.ErrAccountExists is returned.
func (s *Store) CreateAccounts(ctx context.Context, rec *types.InitializationRecord, accounts ...*types.Account) error {
	if len(accounts) == 0 {
		return errors.New("no accounts to create")
	}

	keys := make([]interface{}, 0, len(accounts)+1)
	values := make([]interface{}, 0, len(accounts)+1)
	seen := make(map[solana.PublicKey]struct{}, len(accounts))
	for _, acc := range accounts {
		if acc == nil {
			return errors.New("null account to store")
		}
		if _, dup := seen[acc.Address]; dup {
			return fmt.Errorf("account %s listed twice", acc.Address)
		}
		seen[acc.Address] = struct{}{}

		accJSON, err := json.Marshal(acc)
		if err != nil {
			return fmt.Errorf("cannot marshal account to JSON: %w", err)
		}
		keys = append(keys, accountKey(acc.Address))
		values = append(values, accJSON)
	}

	keys = append(keys, config.RedisInitLog)
	if rec != nil {
		recJSON, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("cannot marshal initialization record to JSON: %w", err)
		}
		values = append(values, recJSON)
	} else {
		values = append(values, "")
	}

	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	args := append([]interface{}{len(keys)}, keys...)
	args = append(args, values...)
	created, err := redis.Int(createScript.Do(conn, args...))
	if err != nil {
		log.Error("Redis create script failed", "err", err)
		return err
	}
	if created == 0 {
		return types.ErrAccountExists
	}
	return nil
}

func (s *Store) InitializationRecords(ctx context.Context) ([]*types.InitializationRecord, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	entries, err := redis.ByteSlices(conn.Do("LRANGE", config.RedisInitLog, 0, -1))
	if err != nil {
		return nil, err
	}

	recs := make([]*types.InitializationRecord, 0, len(entries))
	for _, entry := range entries {
		var rec types.InitializationRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, nil
}
