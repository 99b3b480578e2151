package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/scouting-dashboard/internal/app"
	"github.com/riskibarqy/scouting-dashboard/internal/config"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/id"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <players.json>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "component", "seed")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1]); err != nil {
		logger.Error("seed failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, path string) error {
	if cfg.DBURL == "" {
		return errors.New("DB_URL is required for seeding")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	items, err := decodePlayers(raw, id.NewRandomGenerator("plr-"))
	if err != nil {
		return err
	}

	cfg.CacheEnabled = false
	repos, err := app.NewRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	imp := importer{writer: repos.Writer, workers: cfg.SeedWorkers, logger: logger}
	result, err := imp.run(ctx, items)
	logger.Info("seed finished", "file", path, "imported", result.Imported, "failed", result.Failed)
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d players failed to import", result.Failed, len(items))
	}

	return nil
}
