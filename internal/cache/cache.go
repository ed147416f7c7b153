package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lcampos/notedeck/internal/logger"
)

// DefaultRetention is how long an entry stays valid after Put.
const DefaultRetention = time.Hour

// DefaultSweepInterval is how often the janitor runs a full Sweep.
const DefaultSweepInterval = 10 * time.Minute

type entry struct {
	value     string
	createdAt time.Time
}

// Cache is a retention-bounded memoization store for generated content.
// It is advisory: a miss (absent or expired) must fall through to the real
// operation, and the cache is never a source of truth.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]entry
	retention time.Duration
	now       func() time.Time
	log       *logger.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache whose entries expire after retention.
func New(retention time.Duration, opts ...Option) *Cache {
	if retention <= 0 {
		retention = DefaultRetention
	}
	c := &Cache{
		entries:   make(map[string]entry),
		retention: retention,
		now:       time.Now,
		log:       logger.Default().WithPrefix("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key if present and still within the retention
// window. An expired entry is evicted as a side effect of the lookup.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.createdAt) > c.retention {
		delete(c.entries, key)
		c.log.Debug("evicted expired entry on lookup: key=%s", key)
		return "", false
	}
	return e.value, true
}

// Put inserts or overwrites the value for key, restarting its retention window.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, createdAt: c.now()}
}

// Sweep evicts every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, e := range c.entries {
		if now.Sub(e.createdAt) > c.retention {
			delete(c.entries, key)
			evicted++
		}
	}
	if evicted > 0 {
		c.log.Debug("sweep evicted %d entries, %d remain", evicted, len(c.entries))
	}
	return evicted
}

// Len returns the number of stored entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// StartSweeping runs Sweep on a fixed interval until ctx is cancelled.
func (c *Cache) StartSweeping(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}
