// migrate applies the embedded schema; run with go run ./cmd/migrate -direction up.
package main

import (
	"flag"
	"log/slog"
	"os"

	"jobboard/config"
	"jobboard/internal/infra/persistence/migrations"
)

func main() {
	direction := flag.String("direction", migrations.DirectionUp, "Migration direction: up or down")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Migration == nil || cfg.Migration.DSN == "" {
		logger.Error("migration.dsn is not configured; set it in config.yaml or MIGRATION_DSN")
		os.Exit(1)
	}

	if err := migrations.Run(cfg.Migration.DSN, *direction); err != nil {
		logger.Error("Migration failed", slog.String("direction", *direction), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration finished", slog.String("direction", *direction))
}
