package recommender

import (
	"fmt"
	"sort"
	"strings"

	"scentMatch/domain"
)

// Catalog is the immutable in-memory feature table. It is built once from
// loader output and shared read-only by every request; hot reload replaces
// the whole catalog, it never mutates rows in place.
type Catalog struct {
	items    []domain.Fragrance
	features []domain.FeatureVector
	byName   map[string]int
}

// NewCatalog indexes loader output into a catalog. Names are unique by
// contract; a duplicate is a catalog defect, not a per-request condition.
func NewCatalog(items []domain.Fragrance) (*Catalog, error) {
	c := &Catalog{
		items:    items,
		features: make([]domain.FeatureVector, len(items)),
		byName:   make(map[string]int, len(items)),
	}
	for i, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, &domain.SchemaViolationError{Reason: fmt.Sprintf("row %d: empty name", i)}
		}
		if _, exists := c.byName[name]; exists {
			return nil, &domain.SchemaViolationError{Reason: fmt.Sprintf("duplicate fragrance name: %s", name)}
		}
		c.byName[name] = i
		c.features[i] = it.Features()
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) Item(i int) domain.Fragrance {
	return c.items[i]
}

func (c *Catalog) Features(i int) domain.FeatureVector {
	return c.features[i]
}

// IndexByName resolves a fragrance name to its row index.
func (c *Catalog) IndexByName(name string) (int, bool) {
	i, ok := c.byName[strings.TrimSpace(name)]
	return i, ok
}

// Summaries returns (brand, name) pairs sorted for stable listings.
func (c *Catalog) Summaries() []domain.FragranceSummary {
	out := make([]domain.FragranceSummary, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, domain.FragranceSummary{Brand: it.Brand, Name: it.Name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Brand == out[j].Brand {
			return out[i].Name < out[j].Name
		}
		return out[i].Brand < out[j].Brand
	})
	return out
}
