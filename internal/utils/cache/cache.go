// Package cache provides a small in-memory TTL cache used by the data-fetch
// layer. It replaces the ambient client-side cache the console used to keep:
// the cache is an explicit object owned by its caller, and the clock is
// injectable so expiry is testable without sleeping.
package cache

import (
	"sync"
	"time"
)

// Clock supplies the current time. Production code uses time.Now; tests
// inject a fake.
type Clock func() time.Time

type entry struct {
	value     any
	expiresAt time.Time
}

// TTLCache is a keyed cache whose entries expire a fixed duration after they
// were set. Safe for concurrent use.
type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     Clock
	entries map[string]entry
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock overrides the cache's time source.
func WithClock(clock Clock) Option {
	return func(c *TTLCache) {
		c.now = clock
	}
}

// New creates a TTLCache. A non-positive ttl disables caching entirely:
// every Get misses.
func New(ttl time.Duration, opts ...Option) *TTLCache {
	c := &TTLCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key if it exists and has not expired.
func (c *TTLCache) Get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, restarting its TTL.
func (c *TTLCache) Set(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops a single key, forcing the next Get to miss.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge drops every entry.
func (c *TTLCache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
