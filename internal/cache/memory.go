package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const memoryCacheSize = 256

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache implements the Cache interface in process, for running
// without Redis. Entries are evicted least recently used first.
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemoryCache creates a cache holding up to size entries.
func NewMemoryCache(size int) *MemoryCache {
	if size < 1 {
		size = memoryCacheSize
	}

	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, 0),
		now: time.Now,
	}
}

// Get retrieves a value that has not yet expired
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := c.lru.Get(key)

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, ErrCacheMiss
	}

	return entry.value, nil
}

// Set stores a value for ttl
// If ttl is 0, the value will not be cached
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		return nil
	}

	c.lru.Add(key, memoryEntry{value: value, expiresAt: c.now().Add(ttl)})

	return nil
}

// Close drops every entry
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}
