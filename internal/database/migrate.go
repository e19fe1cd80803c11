package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/mrlokans/lending-library/internal/database/migrations"
	"github.com/mrlokans/lending-library/internal/logger"
)

// prepareGoose points goose at the embedded scripts for this connection's dialect.
// The scripts directory is named after the goose dialect.
func (d *Database) prepareGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logger.NewGooseLogger(d.log))
	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate applies all pending schema scripts. Running it on an up-to-date
// schema does nothing.
func (d *Database) Migrate(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := d.prepareGoose(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, d.dialect); err != nil {
		d.log.Error("migration failed", logger.Err(err))
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	if finalVersion != currentVersion {
		d.log.Info("migration completed",
			slog.Int64("from_version", currentVersion),
			slog.Int64("to_version", finalVersion))
	}
	return nil
}

// MigrateDown rolls back the given number of scripts.
func (d *Database) MigrateDown(ctx context.Context, steps int) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := d.prepareGoose(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, d.dialect); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	return nil
}

func (d *Database) SchemaVersion(ctx context.Context) (int64, error) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := d.prepareGoose(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, sqlDB)
}

// Status logs the applied state of every script.
func (d *Database) Status(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := d.prepareGoose(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, sqlDB, d.dialect)
}
