// Package cache provides a small key/value cache abstraction with TTL
// expiry, injected as a dependency wherever cached reads are needed.
package cache

import (
	"context"
	"time"
)

// Well-known cache keys.
const (
	KeyDedupStats = "dedup:stats"
)

// Cache stores opaque byte values under string keys with per-entry TTL.
// A missing or expired key is not an error: Get reports ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
