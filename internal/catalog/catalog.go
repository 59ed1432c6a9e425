package catalog

import (
	"github.com/outfitly/outfit-service/internal/domain"
)

// Catalog holds the normalized product list in load order plus an id index.
// Built once at startup and never mutated, so concurrent readers need no
// locking.
type Catalog struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

func Build(rows []domain.RawProduct) *Catalog {
	products := make([]*domain.Product, 0, len(rows))
	byID := make(map[string]*domain.Product, len(rows))

	for _, raw := range rows {
		p := Normalize(raw)
		products = append(products, p)
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}
}

func (c *Catalog) ByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the full catalog in load order. Callers must not modify
// the returned slice.
func (c *Catalog) Products() []*domain.Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}
