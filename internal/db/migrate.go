package db

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"field-ministry/campo/internal/db/migrations"
	"field-ministry/campo/internal/logging"
)

// Migrate applies all pending embedded SQL migrations.
func Migrate(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return err
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return err
	}
	logging.Info("Database migrations applied", "version", version)
	return nil
}
