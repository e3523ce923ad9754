package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
)

// NewGormConfig is shared by the Postgres and SQLite openers. Driver errors are
// translated so repositories can match gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated, and every timestamp GORM stamps is UTC.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// InitPostgresORM opens the GORM pool. It dials through pgx, not the sqlx
// pool, because error translation only understands pgconn errors.
func InitPostgresORM(dsn string, metricsReg *metrics.MetricsRegistry) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if metricsReg != nil {
		if err := RegisterMetricsCallbacks(gdb, metricsReg); err != nil {
			return nil, err
		}
	}

	logging.Info("Connected to Postgres via GORM")
	return gdb, nil
}

// OpenSQLite opens an in-memory SQLite database with foreign keys enforced and
// returns both handles over a single connection. Used by tests.
func OpenSQLite() (*gorm.DB, *sqlx.DB, error) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), NewGormConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	return gdb, sqlx.NewDb(sqlDB, "sqlite3"), nil
}
