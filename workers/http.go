package workers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gotbtcgateway/config"
	"gotbtcgateway/workers/handlers"

	"github.com/ethereum/go-ethereum/log"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

func NewRouter(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Options("/*", CORSHeaders)

	r.Get("/health", api.HealthCheck)
	r.Get("/state", api.State)
	r.Get("/custodian", api.Custodian)
	r.Get("/addresses", api.Addresses)
	r.Get("/prerequisites", api.Prerequisites)

	return r
}

// Worker_HTTP serves the read-only API until SIGINT/SIGTERM.
func Worker_HTTP(api *handlers.API) {
	log.Info("Starting HTTP service", "network", api.Network.Name)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Config.Server.HTTPPort),
		Handler: NewRouter(api),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Crit("Error listening", "addr", server.Addr, "err", err)
		}
	}()
	log.Info("HTTP service started", "addr", server.Addr)

	<-done
	log.Info("HTTP service stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Crit("HTTP service shutdown error", "err", err)
	}
	log.Info("HTTP service shutdown normal")
}

func CORSHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, Origin, X-Requested-With")
}
