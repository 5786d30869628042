package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache_PutGet(t *testing.T) {
	t.Parallel()
	c := NewResponseCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", "value")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, c.Len())

	// Overwrite refreshes the entry.
	c.Put("k", "newer")
	got, ok = c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "newer", got)
	assert.Equal(t, 1, c.Len())
}

func TestResponseCache_ExpiryOnGet(t *testing.T) {
	t.Parallel()
	c := newResponseCache(10*time.Millisecond, ResponseCacheMaxEntries)

	c.Put("k", 1)
	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
	// Expired entry was removed during the read.
	assert.Equal(t, 0, c.Len())
}

func TestResponseCache_SweepOnPutOverflow(t *testing.T) {
	t.Parallel()
	c := newResponseCache(10*time.Millisecond, 5)

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("old-%d", i), i)
	}
	time.Sleep(25 * time.Millisecond)

	// This put pushes the size past the bound and triggers the sweep,
	// which removes everything expired.
	c.Put("fresh", "v")
	assert.Equal(t, 1, c.Len())
	got, ok := c.Get("fresh")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestResponseCache_SweepKeepsLiveEntries(t *testing.T) {
	t.Parallel()
	c := newResponseCache(time.Hour, ResponseCacheMaxEntries)

	c.Put("a", 1)
	c.Put("b", 2)
	removed := c.Sweep()
	assert.Zero(t, removed)
	assert.Equal(t, 2, c.Len())
}

func TestResponseCache_ManualSweep(t *testing.T) {
	t.Parallel()
	c := newResponseCache(5*time.Millisecond, ResponseCacheMaxEntries)

	c.Put("a", 1)
	c.Put("b", 2)
	time.Sleep(20 * time.Millisecond)
	c.Put("c", 3)

	removed := c.Sweep()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
}
