package catalog

import (
	"fmt"
	"strings"

	"nextgear/internal/domain"
)

// Catalog owns the mutable set of sellable listings. Listings are kept
// most-recent-first: adds prepend, and the relative order of the rest is
// preserved across every mutation.
//
// Catalog is not safe for concurrent use on its own; callers are expected to
// serialize access (the store façade holds the lock).
type Catalog struct {
	products []domain.Product
}

func New(seed ...domain.Product) *Catalog {
	c := &Catalog{}
	c.products = append(c.products, seed...)
	return c
}

// List returns a copy of the current listings, most recent first.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the listing with the given id.
func (c *Catalog) Get(id string) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
}

// Add inserts a new listing at the front. The id must be unique.
func (c *Catalog) Add(p domain.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product id required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name required: %w", domain.ErrValidation)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("product price must not be negative: %w", domain.ErrValidation)
	}
	for _, existing := range c.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product %q already exists: %w", p.ID, domain.ErrValidation)
		}
	}
	c.products = append([]domain.Product{p}, c.products...)
	return nil
}

// Remove deletes the listing with the given id. Removing an absent id is a
// no-op so the admin surface stays idempotent.
func (c *Catalog) Remove(id string) {
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// RemoveAll deletes every listing whose id is in ids. Ids without a matching
// listing are skipped. Called by the ledger when an order is confirmed: a
// confirmed sale removes the listing entirely (one-of-a-kind goods, no stock
// counter).
func (c *Catalog) RemoveAll(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := c.products[:0]
	for _, p := range c.products {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	c.products = kept
}

// Categories returns the distinct categories in listing order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Search filters listings by a case-insensitive name substring, an exact
// category and an in-stock flag. Empty query and category match everything.
func (c *Catalog) Search(query, category string, inStockOnly bool) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.Product
	for _, p := range c.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if inStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}
