package cache

import (
	"context"
	"sync"

	"github.com/amirasaad/fxconvert/pkg/cache"
)

// MemoryCache implements RateTableCache as a mutex-guarded single slot in
// process memory. This is the default backend.
type MemoryCache struct {
	mu   sync.RWMutex
	snap *cache.Snapshot
}

// NewMemoryCache creates a new in-memory cache with an empty slot.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

// Get returns the current snapshot, or nil when the slot is empty.
func (c *MemoryCache) Get(ctx context.Context) (*cache.Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, nil
}

// Set overwrites the slot.
func (c *MemoryCache) Set(ctx context.Context, snap *cache.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	return nil
}

var _ cache.RateTableCache = (*MemoryCache)(nil)
