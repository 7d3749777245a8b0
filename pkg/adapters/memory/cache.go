package memory

import (
	"context"
	"sync"

	"github.com/aretw0/trinomial/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]domain.Result
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]domain.Result),
	}
}

// Set stores a copy of the result.
func (c *Cache) Set(ctx context.Context, key string, result *domain.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = *result
	return nil
}

// Get returns a copy so callers can't mutate cached entries through the pointer.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &result, nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
