package cache

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// CacheService is the shared (cross-replica) cache used for revoked
// tokens and cron locks. The per-process ResponseCache is separate on
// purpose: generated results are request-scoped performance state, not
// shared truth.
type CacheService interface {
	// Set stores a string value with an expiration time.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a string value.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists.
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection.
	Close() error

	// HealthCheck verifies cache connectivity.
	HealthCheck(ctx context.Context) error

	// NewMutex returns a distributed lock.
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}
