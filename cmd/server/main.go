package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kitaygorod/tracker/internal/config"
	"github.com/kitaygorod/tracker/internal/core"
	"github.com/kitaygorod/tracker/internal/logging"
	"github.com/kitaygorod/tracker/internal/schema"
	"github.com/kitaygorod/tracker/internal/sheets"
	"github.com/kitaygorod/tracker/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"fetch_timeout", cfg.Sheets.FetchTimeout,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	scale := schema.DefaultStatusScale
	if len(cfg.Tracking.StatusScale) > 0 {
		scale = cfg.Tracking.StatusScale
		slog.Info("status scale overridden from config", "entries", len(scale))
	}

	fetcher := sheets.NewHTTPFetcher(cfg.Sheets.FetchTimeout)
	store := core.NewStore(fetcher, cfg.Sheets.OrdersURL, cfg.Sheets.BatchesURL)
	resolver := core.NewResolver(store, core.NewStatusNormalizer(scale), slog.Default())

	// Warm both caches so the first lookup does not pay two cold fetches.
	// Failure is tolerated: the sheets may be briefly unreachable at boot,
	// and every lookup re-fetches anyway.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), cfg.Sheets.FetchTimeout+5*time.Second)
	if err := store.LoadBoth(warmCtx, false); err != nil {
		slog.Warn("dataset warm-up failed", "error", err)
	} else {
		slog.Info("datasets warmed up")
	}
	cancelWarm()

	// Create server with config
	server := web.NewServer(resolver, store, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
