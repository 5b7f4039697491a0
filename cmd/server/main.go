package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/teamdash/teamdash/internal/api"
	"github.com/teamdash/teamdash/internal/config"
	"github.com/teamdash/teamdash/internal/dashboard"
	"github.com/teamdash/teamdash/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	latency := dashboard.RandomLatency{
		Min: time.Duration(cfg.LatencyMinMS) * time.Millisecond,
		Max: time.Duration(cfg.LatencyMaxMS) * time.Millisecond,
	}
	svc := dashboard.NewService(dashboard.NewStore(), latency)

	if err := seedStore(svc, cfg.SeedFile); err != nil {
		slog.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := api.NewRouter(api.RouterDeps{
		Service:  svc,
		Version:  cfg.Version,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting teamdash server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// seedStore loads the configured seed file, or the built-in fixtures
// when none is set. Seeding bypasses the artificial latency.
func seedStore(svc *dashboard.Service, path string) error {
	f := seed.Default()
	if path != "" {
		loaded, err := seed.Load(path)
		if err != nil {
			return err
		}
		f = loaded
	}

	boot := dashboard.NewService(svc.Store(), dashboard.NoLatency{})
	if err := seed.Apply(context.Background(), boot, f); err != nil {
		return err
	}
	slog.Info("store seeded", "seedFile", path)
	return nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
