package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  http_port: 9090
  redis_host: redis.internal
  redis_port: 6380
solana:
  rpc:
    - https://api.mainnet-beta.solana.com
custodian:
  minting_limit_ceiling: 21000000
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadReadsFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.HTTPPort)
	require.Equal(t, "redis.internal", cfg.Server.RedisHost)
	require.Equal(t, 6380, cfg.Server.RedisPort)
	require.Equal(t, []string{"https://api.mainnet-beta.solana.com"}, cfg.Solana.RPCList)
	require.Equal(t, uint64(21000000), cfg.Custodian.MintingLimitCeiling)
	require.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_REDIS_HOST", "10.0.0.7")
	t.Setenv("CUSTODIAN_MINTING_LIMIT_CEILING", "5")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "10.0.0.7", cfg.Server.RedisHost)
	require.Equal(t, uint64(5), cfg.Custodian.MintingLimitCeiling)
	require.Equal(t, 6380, cfg.Server.RedisPort)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "solana:\n  rpc: []\n"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.HTTPPort)
	require.Equal(t, "127.0.0.1", cfg.Server.RedisHost)
	require.Equal(t, 6379, cfg.Server.RedisPort)
	require.Zero(t, cfg.Custodian.MintingLimitCeiling)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestNetworksValidate(t *testing.T) {
	require.NoError(t, Mainnet.Validate())
	require.NoError(t, Devnet.Validate())
	require.NoError(t, Active.Validate())
}

func TestForeignTokenAddressIsLeftPadded(t *testing.T) {
	addr := Mainnet.ForeignTokenAddress
	require.Equal(t, make([]byte, 12), addr[:12])
	require.Equal(t, byte(0x18), addr[12])
	require.Equal(t, byte(0x3a), addr[30])
	require.Equal(t, byte(0x88), addr[31])
	require.Equal(t, uint16(2), Mainnet.ForeignTokenChain)
}

func TestValidateRejectsCollidingPrograms(t *testing.T) {
	n := Mainnet
	n.TBTCProgramID = n.GatewayProgramID
	require.Error(t, n.Validate())

	n = Mainnet
	n.ForeignTokenAddress[0] = 1
	require.Error(t, n.Validate())
}
