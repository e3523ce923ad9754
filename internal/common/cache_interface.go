package common

import (
	"context"
	"time"
)

// CacheInterface is the store shared by every server instance for
// short-lived string markers, such as the reminder job's "already sent" key.
type CacheInterface interface {
	// SetIfAbsent stores value under key only when the key is missing and
	// reports whether this call wrote it.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
