package visitdash

import (
	"context"
	"sync"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

// LoadFunc produces a record table.
type LoadFunc func(ctx context.Context) (*models.Table, error)

// Cache is a single-entry cache keyed on nothing. The first successful load
// is kept for the lifetime of the process; failed loads are not stored, so
// the next call retries.
type Cache struct {
	mu    sync.Mutex
	load  LoadFunc
	table *models.Table
}

// NewCache creates a cache around load.
func NewCache(load LoadFunc) *Cache {
	return &Cache{load: load}
}

// NewSourceCache creates a cache that loads src with opts.
func NewSourceCache(src Source, opts Options) *Cache {
	return NewCache(func(ctx context.Context) (*models.Table, error) {
		return Load(ctx, src, opts)
	})
}

// Get returns the cached table, loading it on first use. On a failed load it
// returns the loader's (empty) table and error.
func (c *Cache) Get(ctx context.Context) (*models.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil {
		return c.table, nil
	}

	table, err := c.load(ctx)
	if err != nil {
		if table == nil {
			table = models.Empty()
		}
		return table, err
	}
	c.table = table
	return table, nil
}

// Loaded reports whether a table is cached.
func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table != nil
}
