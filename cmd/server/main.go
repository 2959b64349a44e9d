package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gotbtcgateway/SOLRPC"
	"gotbtcgateway/config"
	"gotbtcgateway/redis"
	"gotbtcgateway/workers"
	"gotbtcgateway/workers/handlers"

	"github.com/ethereum/go-ethereum/log"
)

func main() {
	config.Init()

	f, err := os.OpenFile(fmt.Sprintf("logs/log_%s.txt", time.Now().Format("2006-01-02")), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error opening log file for writing: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(io.MultiWriter(os.Stdout, f), logLevel(config.Config.Server.LogLevel), false)))

	log.Info("Starting tBTC gateway custodian service", "network", config.Active.Name, "gateway", config.Active.GatewayProgramID)

	// the custodian record lives in Redis, without it there is nothing to serve
	store := redis.Init()
	defer store.Close()

	workers.Worker_HTTP(&handlers.API{
		Network:  config.Active,
		Reader:   store,
		Upstream: SOLRPC.NewReader(config.Config.Solana.RPCList),
	})
}

func logLevel(name string) slog.Level {
	switch name {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	}
	return log.LevelInfo
}
