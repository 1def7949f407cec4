package storage

import (
	"context"
	"sync"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// ServiceCache is an explicitly owned, injectable populate-once cache over a
// ServiceStore. Its lifecycle is empty -> populated-once -> (optionally)
// invalidated; invalidation is driven from outside the search core (e.g. the
// data-file watcher). The cached slice is shared read-only between concurrent
// searches and must not be mutated by callers.
type ServiceCache struct {
	store ServiceStore

	mu       sync.Mutex
	services []*models.Service
	loaded   bool
}

// NewServiceCache creates a cache over store.
func NewServiceCache(store ServiceStore) *ServiceCache {
	return &ServiceCache{store: store}
}

// Load returns the cached service set, populating it from the store on the
// first call (or the first call after Invalidate).
func (c *ServiceCache) Load(ctx context.Context) ([]*models.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.services, nil
	}
	services, err := c.store.LoadServices(ctx)
	if err != nil {
		return nil, err
	}
	c.services = services
	c.loaded = true
	return c.services, nil
}

// Invalidate discards the cached set; the next Load repopulates.
func (c *ServiceCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = nil
	c.loaded = false
}

// Len returns the number of cached services, or 0 when not populated.
func (c *ServiceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.services)
}
