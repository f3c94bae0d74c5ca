package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/seismowatch/internal/adapter/http"
	"github.com/couchcryptid/seismowatch/internal/board"
	"github.com/couchcryptid/seismowatch/internal/config"
	"github.com/couchcryptid/seismowatch/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	registry := board.NewRegistry(board.RegistryConfig{
		Period:    cfg.TickPeriod,
		MaxBoards: cfg.MaxBoards,
		RandSeed:  cfg.RandSeed,
	}, logger, metrics)
	logger.Info("live boards configured",
		"tick_period", cfg.TickPeriod,
		"max_boards", cfg.MaxBoards,
		"deterministic", cfg.RandSeed != 0,
	)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:          cfg.HTTPAddr,
		DashboardPath: cfg.DashboardPath,
	}, registry, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Tear down every mounted board first so no timer outlives its socket;
	// this also flips /readyz to 503 while connections drain.
	registry.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
