package cache

import (
	"sync"
	"time"
)

const (
	// ResponseCacheTTL bounds how long a generated result is reused.
	ResponseCacheTTL = time.Hour

	// ResponseCacheMaxEntries triggers an expiry sweep on insert. The
	// sweep is best effort: if every entry is still fresh the cache may
	// exceed the bound until entries age out.
	ResponseCacheMaxEntries = 100
)

type responseEntry struct {
	value    interface{}
	storedAt time.Time
}

// ResponseCache is the process-wide, time-bounded cache for generated
// results, keyed by request fingerprint. Contents are lost on restart by
// design; correctness never depends on cache survival. Explicitly
// constructed and injected so tests can isolate instances.
type ResponseCache struct {
	ttl        time.Duration
	maxEntries int

	mu      sync.Mutex
	entries map[string]responseEntry
}

func NewResponseCache() *ResponseCache {
	return newResponseCache(ResponseCacheTTL, ResponseCacheMaxEntries)
}

func newResponseCache(ttl time.Duration, maxEntries int) *ResponseCache {
	return &ResponseCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]responseEntry),
	}
}

// Get returns the value stored under key if it is still fresh. Expired
// entries are deleted on access, not just during sweeps.
func (c *ResponseCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Put stores value with the current timestamp and sweeps expired entries
// once the entry count exceeds the bound.
func (c *ResponseCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = responseEntry{value: value, storedAt: time.Now()}
	if len(c.entries) > c.maxEntries {
		c.sweepLocked()
	}
}

// Len reports the current entry count, expired entries included.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep drops all TTL-expired entries and reports how many were removed.
// Also run periodically by the healthcheck cron.
func (c *ResponseCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked()
}

func (c *ResponseCache) sweepLocked() int {
	removed := 0
	for key, entry := range c.entries {
		if time.Since(entry.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
