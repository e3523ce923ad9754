// Package dbtest opens throwaway SQLite databases carrying the full schema.
package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"field-ministry/campo/internal/db"
	models "field-ministry/campo/internal/models/gorm"
)

// api_keys has no GORM model; it is only reached through sqlx.
const apiKeysDDL = `
CREATE TABLE api_keys (
	id           TEXT PRIMARY KEY,
	key_hash     TEXT NOT NULL UNIQUE,
	user_id      TEXT NOT NULL REFERENCES users (id),
	label        TEXT NOT NULL DEFAULT '',
	status       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMP NOT NULL,
	last_used_at TIMESTAMP
)`

// Open returns GORM and sqlx handles over one in-memory database, closed when
// the test ends.
func Open(t testing.TB) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gdb, sdb, err := db.OpenSQLite()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	_, err = sdb.Exec(apiKeysDDL)
	require.NoError(t, err)

	t.Cleanup(func() { _ = sdb.Close() })
	return gdb, sdb
}
