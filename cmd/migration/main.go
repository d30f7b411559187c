package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskibarqy/mockmaster/internal/app"
	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
)

func main() {
	cmd, err := app.ParseMigrationCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(2)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewConsole(cfg.LogLevel).Named("migration")
	logging.SetDefault(logger)

	if err := run(cfg, cmd, logger); err != nil {
		logger.Error("migration failed", "action", cmd.Action, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, cmd app.MigrationCommand, logger *logging.Logger) error {
	migrator, err := app.NewMigrator(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("close migrator failed", "error", err)
		}
	}()

	return migrator.Run(cmd)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s up\n", name)
	fmt.Fprintf(os.Stderr, "  %s down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s version\n", name)
	fmt.Fprintf(os.Stderr, "  %s force 1771776100\n", name)
	fmt.Fprintf(os.Stderr, "  %s goto 1771776034\n", name)
}
