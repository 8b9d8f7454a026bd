// Package catalog holds the fixed product list the storefront sells. The
// catalog is read-only; the stores only ever copy products out of it.
package catalog

import (
	"sort"
	"strings"

	"github.com/junaidrashid-git/storefront-api/models"
)

// Catalog is a normalized, immutable product list.
type Catalog struct {
	products []models.Product
	byID     map[uint]models.Product
}

// New normalizes raw entries into a catalog. Entries with a zero id, empty
// name, or negative price are rejected; a later duplicate id loses to the
// first occurrence.
func New(raw []models.Product) *Catalog {
	c := &Catalog{byID: make(map[uint]models.Product)}
	for _, p := range raw {
		if p.ID == 0 || p.Name == "" || p.Price < 0 {
			continue
		}
		if _, ok := c.byID[p.ID]; ok {
			continue
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c
}

// ByID looks a product up by id.
func (c *Catalog) ByID(id uint) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Filter narrows and orders the catalog for display.
type Filter struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64 // 0 means no upper bound
	Sort     string  // "price-low", "price-high", "rating"
}

// Select returns the products matching f, sorted per f.Sort.
func (c *Catalog) Select(f Filter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []models.Product
	for _, p := range c.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	switch f.Sort {
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
