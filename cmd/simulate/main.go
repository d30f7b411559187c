package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/mockmaster/internal/app"
	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/observability"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/simulate"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewConsole(cfg.LogLevel).Named("simulate")
	logging.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("simulation failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *logging.Logger) error {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, closeStore, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close store failed", "error", err)
		}
	}()

	logger.Info("simulation starting",
		"store", cfg.StoreDriver,
		"drafts", cfg.Simulate.Drafts,
		"team_count", cfg.Simulate.TeamCount,
		"roster_size", cfg.Simulate.RosterSize,
		"workers", cfg.Simulate.Workers,
		"eager", cfg.Simulate.Eager,
	)

	sim := simulate.New(services.Drafts, services.Picks, services.Players, cfg.Simulate, logger)
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"completed", report.DraftsCompleted,
		"failed", report.DraftsFailed,
		"picks", report.Picks,
		"conflicts", report.Conflicts,
		"rejections", report.Rejections,
		"duration_ms", report.Duration.Milliseconds(),
	)
	if report.DraftsFailed > 0 {
		return fmt.Errorf("%d of %d drafts failed", report.DraftsFailed, cfg.Simulate.Drafts)
	}

	return nil
}
