// Package cache provides the forecast cache backends.
package cache

import (
	"context"
	"sync"
	"time"

	"fleetroute/internal/domain/entity"
)

// janitorInterval is how often expired entries are swept
const janitorInterval = time.Minute

type memoryEntry struct {
	entries   []entity.WeatherConditions
	expiresAt time.Time
}

// MemoryCache is an in-process forecast cache with a fixed TTL.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCache creates an empty cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached entries for key unless they have expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]entity.WeatherConditions, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		if current, ok := c.store[key]; ok && !c.now().Before(current.expiresAt) {
			delete(c.store, key)
		}
		c.mu.Unlock()

		return nil, false
	}

	return e.entries, true
}

// Set stores entries under key, replacing any previous value.
func (c *MemoryCache) Set(_ context.Context, key string, entries []entity.WeatherConditions) {
	c.mu.Lock()
	c.store[key] = memoryEntry{
		entries:   entries,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Len returns the number of stored keys, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.store)
}

// Purge drops every expired entry.
func (c *MemoryCache) Purge() {
	now := c.now()

	c.mu.Lock()
	for key, e := range c.store {
		if !now.Before(e.expiresAt) {
			delete(c.store, key)
		}
	}
	c.mu.Unlock()
}

// Run purges expired entries every interval until ctx is done.
func (c *MemoryCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}
