package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/cache"
)

// fakeClock lets tests move time forward explicitly.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCache(retention time.Duration) (*cache.Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	return cache.New(retention, cache.WithClock(clock.Now)), clock
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(time.Hour)

	c.Put("k1", "v1")
	v, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "v1", v)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache(time.Hour)

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCache_ExpiryOnLookup(t *testing.T) {
	c, clock := newTestCache(time.Hour)

	c.Put("k1", "v1")

	clock.Advance(30 * time.Minute)
	v, ok := c.Get("k1")
	require.True(t, ok, "entry inside the retention window")
	assert.Equal(t, "v1", v)

	clock.Advance(31 * time.Minute)
	_, ok = c.Get("k1")
	assert.False(t, ok, "entry past the retention window")
	assert.Equal(t, 0, c.Len(), "expired entry is evicted by the lookup")
}

func TestCache_PutRestartsRetention(t *testing.T) {
	c, clock := newTestCache(time.Hour)

	c.Put("k1", "v1")
	clock.Advance(50 * time.Minute)
	c.Put("k1", "v2")
	clock.Advance(50 * time.Minute)

	v, ok := c.Get("k1")
	require.True(t, ok, "overwrite restarts the retention window")
	assert.Equal(t, "v2", v)
}

func TestCache_Sweep(t *testing.T) {
	c, clock := newTestCache(time.Hour)

	c.Put("old1", "v")
	c.Put("old2", "v")
	clock.Advance(2 * time.Hour)
	c.Put("fresh", "v")

	evicted := c.Sweep()
	assert.Equal(t, 2, evicted)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("fresh")
	assert.True(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := cache.New(time.Hour)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			c.Put("k", "v")
			c.Sweep()
		}
	}()
	for i := 0; i < 500; i++ {
		c.Get("k")
	}
	<-done
}
