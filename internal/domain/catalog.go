package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Catalog is a registry of products keyed by SKU. Inserting a product whose
// SKU already exists replaces the previous entry. Listings are sorted by SKU
// for stable output, but callers should not depend on any order.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]*Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]*Product)}
}

// AddProduct inserts p, replacing any product with the same SKU.
func (c *Catalog) AddProduct(p *Product) error {
	if p == nil {
		return newValidationError("product cannot be nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.SKU()] = p
	return nil
}

// AddProducts adds every product in order. A nil list is rejected; a nil
// element stops the insert at that position and earlier products remain.
func (c *Catalog) AddProducts(products []*Product) error {
	if products == nil {
		return newValidationError("product list cannot be nil")
	}
	for _, p := range products {
		if err := c.AddProduct(p); err != nil {
			return err
		}
	}
	return nil
}

// FindBySKU looks up a product by its trimmed SKU. A blank SKU is never found.
func (c *Catalog) FindBySKU(sku string) (*Product, bool) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[sku]
	return p, ok
}

// FindByName returns products whose name contains query, ignoring case.
func (c *Catalog) FindByName(query string) []*Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []*Product{}
	}
	return c.filter(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name()), term)
	})
}

// FindByPriceRange returns products priced within [min, max].
func (c *Catalog) FindByPriceRange(min, max decimal.Decimal) ([]*Product, error) {
	if min.IsNegative() || max.IsNegative() {
		return nil, newValidationError("price cannot be negative")
	}
	if min.GreaterThan(max) {
		return nil, newValidationError("min price cannot be greater than max price")
	}
	return c.filter(func(p *Product) bool {
		return p.Price().GreaterThanOrEqual(min) && p.Price().LessThanOrEqual(max)
	}), nil
}

// RemoveProduct deletes the product with the given SKU and reports whether
// it existed.
func (c *Catalog) RemoveProduct(sku string) bool {
	sku = strings.TrimSpace(sku)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[sku]; !ok {
		return false
	}
	delete(c.products, sku)
	return true
}

func (c *Catalog) ContainsProduct(sku string) bool {
	_, ok := c.FindBySKU(sku)
	return ok
}

// All returns a copy of every product in the catalog.
func (c *Catalog) All() []*Product {
	return c.filter(func(*Product) bool { return true })
}

func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

func (c *Catalog) IsEmpty() bool {
	return c.Size() == 0
}

func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make(map[string]*Product)
}

func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog{products=%d}", c.Size())
}

func (c *Catalog) filter(keep func(*Product) bool) []*Product {
	c.mu.RLock()
	result := make([]*Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			result = append(result, p)
		}
	}
	c.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].SKU() < result[j].SKU() })
	return result
}
