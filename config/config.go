package config

type Configuration struct {
	// Server config
	Server struct {
		HTTPPort  int    `yaml:"http_port" envconfig:"HTTP_PORT"`
		RedisPort int    `yaml:"redis_port" envconfig:"REDIS_PORT"`
		RedisHost string `yaml:"redis_host" envconfig:"REDIS_HOST"`
		RedisDB   int    `yaml:"redis_db" envconfig:"REDIS_DB"`
		LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	} `yaml:"server"`
	// Solana cluster, only read from
	Solana struct {
		RPCList []string `yaml:"rpc" envconfig:"RPC"`
	} `yaml:"solana"`
	// custodian settings that are not part of the record itself
	Custodian struct {
		// 0 means no protocol ceiling on minting_limit
		MintingLimitCeiling uint64 `yaml:"minting_limit_ceiling" envconfig:"MINTING_LIMIT_CEILING"`
	} `yaml:"custodian"`
}

var Config Configuration

// redis key layout, accounts are indexed by base58 address
const (
	RedisAccountPrefix = "account:"
	RedisInitLog       = "custodian:initlog"
)

func defaults(cfg *Configuration) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.RedisHost == "" {
		cfg.Server.RedisHost = "127.0.0.1"
	}
	if cfg.Server.RedisPort == 0 {
		cfg.Server.RedisPort = 6379
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
}
