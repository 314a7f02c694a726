// Package catalog keeps the product collection in memory as an immutable
// snapshot and knows how to load/save it from a durable store.
package catalog

import (
	"sync/atomic"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

// Store is the persistence contract for the product collection. Both the
// JSON snapshot file and the products table implement it.
type Store interface {
	Load() ([]domain.Product, error)
	Save([]domain.Product) error
}

// Cache holds the current catalog snapshot. Readers get a consistent slice
// without locking; the refresher swaps the whole snapshot atomically so a
// reader never observes a half-updated collection.
type Cache struct {
	snap atomic.Pointer[[]domain.Product]
}

func NewCache() *Cache {
	c := &Cache{}
	empty := []domain.Product{}
	c.snap.Store(&empty)
	return c
}

// Products returns the current snapshot. The slice must be treated as
// read-only; it is shared by every reader until the next Replace.
func (c *Cache) Products() []domain.Product {
	return *c.snap.Load()
}

// Get looks up a product by id in the current snapshot.
func (c *Cache) Get(id int) (domain.Product, bool) {
	for _, p := range c.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Replace swaps in a new snapshot.
func (c *Cache) Replace(ps []domain.Product) {
	snap := make([]domain.Product, len(ps))
	copy(snap, ps)
	c.snap.Store(&snap)
}

// Equal reports whether the cached snapshot matches ps element-wise.
func (c *Cache) Equal(ps []domain.Product) bool {
	cur := c.Products()
	if len(cur) != len(ps) {
		return false
	}
	for i := range cur {
		if !cur[i].Equal(ps[i]) {
			return false
		}
	}
	return true
}
