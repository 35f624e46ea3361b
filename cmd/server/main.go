// Command server runs the decision service: the REST API over the proposal
// workflow and decision ledger. APP_PROFILE selects the config profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/decisionnote/internal/adapters/http"
	"github.com/jsamuelsen11/decisionnote/internal/container"
	"github.com/jsamuelsen11/decisionnote/internal/platform/config"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, slog.String("profile", profile))
	logger.Info("configuration loaded",
		slog.String("store", cfg.Store.Driver),
		slog.Int("vote_threshold", cfg.Voting.Threshold),
		slog.Duration("vote_timeout", cfg.Voting.Timeout),
		slog.Bool("allow_self_approve", cfg.Voting.AllowSelfApprove),
		slog.Int("webhooks", len(cfg.Notifier.Webhooks)),
	)

	otelp, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := otelp.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown", slog.Any("error", err))
		}
	}()

	c := container.New(cfg, logger, otelp.Metrics)
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("releasing resources", slog.Any("error", err))
		}
	}()
	registerHTTP(c.Injector(), cfg, logger, otelp.Metrics)

	// Resolving the server wires the whole graph: store, outbound clients
	// and the event bus.
	server, err := do.Invoke[*adapthttp.Server](c.Injector())
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}
	<-serveErr

	logger.Info("shutdown complete")
	return nil
}
