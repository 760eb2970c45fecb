package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ProductSpec is a catalog entry as written in the store file.
type ProductSpec struct {
	SKU   string  `yaml:"sku"   json:"sku"`
	Name  string  `yaml:"name"  json:"name"`
	Price float64 `yaml:"price" json:"price"`
}

// StoreConfig holds a store definition loaded from shopcart.yaml.
type StoreConfig struct {
	Products  []ProductSpec  `yaml:"products"  json:"products,omitempty"`
	Inventory map[string]int `yaml:"inventory" json:"inventory,omitempty"`
}

// DefaultStoreConfig returns an empty store: no products, no stock.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c StoreConfig) Validate() error {
	// 1. every product must build
	for i, ps := range c.Products {
		if _, err := ps.Build(); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}

	// 2. stock levels must be non-negative and keyed by distinct SKUs
	keys := make([]string, 0, len(c.Inventory))
	for sku := range c.Inventory {
		keys = append(keys, sku)
	}
	sort.Strings(keys)

	seen := make(map[string]string, len(keys))
	for _, sku := range keys {
		trimmed := strings.TrimSpace(sku)
		if trimmed == "" {
			return fmt.Errorf("inventory has an empty SKU key")
		}
		if qty := c.Inventory[sku]; qty < 0 {
			return fmt.Errorf("inventory[%q] = %d (must be >= 0)", sku, qty)
		}
		if prev, ok := seen[trimmed]; ok {
			return fmt.Errorf("inventory keys %q and %q name the same SKU", prev, sku)
		}
		seen[trimmed] = sku
	}

	return nil
}

// Build validates the entry and returns it as a Product.
func (ps ProductSpec) Build() (*Product, error) {
	return NewProduct(ps.SKU, ps.Name, ps.Price)
}

// BuildCatalog creates a catalog from the configured products. Later
// entries with a repeated SKU replace earlier ones.
func (c StoreConfig) BuildCatalog() (*Catalog, error) {
	products := make([]*Product, 0, len(c.Products))
	for i, ps := range c.Products {
		p, err := ps.Build()
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, p)
	}

	catalog := NewCatalog()
	if err := catalog.AddProducts(products); err != nil {
		return nil, err
	}
	return catalog, nil
}

// UnstockedSKUs returns catalog SKUs with no inventory entry. They can never
// be added to a cart.
func (c StoreConfig) UnstockedSKUs() []string {
	var missing []string
	seen := make(map[string]bool, len(c.Products))
	for _, ps := range c.Products {
		sku := strings.TrimSpace(ps.SKU)
		if seen[sku] {
			continue
		}
		seen[sku] = true
		if _, ok := c.Inventory[sku]; !ok {
			missing = append(missing, sku)
		}
	}
	return missing
}
