// Package main is the entry point for the training cycle dashboard API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkezele/traincycle-api/internal/api"
	"github.com/mkezele/traincycle-api/internal/config"
	"github.com/mkezele/traincycle-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	// Log startup info
	log.Info("starting training cycle API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.Float64("latitude", cfg.Latitude),
		slog.Float64("longitude", cfg.Longitude),
		slog.String("timezone", cfg.Timezone),
	)
	if d, ok := cfg.OverrideDate(); ok {
		log.Warn("date override active, all requests resolve to a fixed date",
			slog.String("date", d.Format("2006-01-02")))
	}

	handlers := api.NewHandlers(cfg, log)
	router := api.SetupRoutes(handlers, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	log.Info("training cycle API stopped")
}
