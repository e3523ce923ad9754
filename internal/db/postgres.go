package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"field-ministry/campo/internal/logging"
)

// InitPostgres opens the sqlx pool used for raw SQL (reports, API keys, health).
// Postgres may still be starting when the server boots, so connect is retried.
func InitPostgres(dsn string) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			conn.SetMaxOpenConns(20)
			conn.SetMaxIdleConns(5)
			conn.SetConnMaxLifetime(30 * time.Minute)
			logging.Info("Connected to Postgres via sqlx")
			return conn, nil
		}
		logging.Warn("Postgres not ready, retrying", "attempt", i+1, "error", err)
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres: %w", err)
}
