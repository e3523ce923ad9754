package entities

import "time"

// ApiKey is a service-integration credential bound to a user. Only the
// SHA-256 hash of the key is stored.
type ApiKey struct {
	ID         string     `db:"id"`
	KeyHash    string     `db:"key_hash"`
	UserID     string     `db:"user_id"`
	Label      string     `db:"label"`
	Status     bool       `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	LastUsedAt *time.Time `db:"last_used_at"`
}
