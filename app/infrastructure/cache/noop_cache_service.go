package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// NoOpCacheService degrades gracefully when no redis is configured:
// nothing is revoked, locks are not distributed. Single-instance
// deployments accept that.
type NoOpCacheService struct{}

func (n *NoOpCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (n *NoOpCacheService) Get(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("key not found: %s", key)
}

func (n *NoOpCacheService) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoOpCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (n *NoOpCacheService) Close() error {
	return nil
}

func (n *NoOpCacheService) HealthCheck(ctx context.Context) error {
	return nil
}

func (n *NoOpCacheService) NewMutex(name string, options ...redsync.Option) *redsync.Mutex {
	return nil
}
