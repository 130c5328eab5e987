package main

// Run database migrations:
//   go run ./cmd/migrate            apply pending migrations
//   go run ./cmd/migrate status     list applied and pending migrations
//   go run ./cmd/migrate down       roll back the latest migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"runwear/internal/shared/config"
	"runwear/internal/shared/storage/db"
	"runwear/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		telemetry.Error("config.load_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	telemetry.Configure(telemetry.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	ctx := context.Background()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	run, err := commandFor(command)
	if err != nil {
		telemetry.Error("migrate.usage", map[string]any{"error": err.Error()})
		os.Exit(2)
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := run(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"command": command, "error": err.Error()})
		sqlDB.Close()
		os.Exit(1)
	}
	telemetry.Info("migrate.done", map[string]any{"command": command})
}

func commandFor(name string) (func(context.Context, *sql.DB) error, error) {
	switch name {
	case "up":
		return db.RunMigrations, nil
	case "status":
		return db.MigrationStatus, nil
	case "down":
		return db.RollbackMigration, nil
	default:
		return nil, fmt.Errorf("unknown command %q (want up, status or down)", name)
	}
}
