package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// pricePlaces is the scale every catalog price is stored at.
const pricePlaces = 2

// Product is an immutable catalog entry. Two products are equal when their
// SKUs match.
type Product struct {
	sku   string
	name  string
	price decimal.Decimal
}

// NewProduct validates and normalizes a catalog entry. SKU and name are
// trimmed, and the price is rounded half-up to two decimal places.
func NewProduct(sku, name string, price float64) (*Product, error) {
	return NewProductFromDecimal(sku, name, decimal.NewFromFloat(price))
}

// NewProductFromDecimal is NewProduct for callers that already hold a decimal price.
func NewProductFromDecimal(sku, name string, price decimal.Decimal) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, newValidationError("SKU cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, newValidationError("product price cannot be negative")
	}

	// Round is half away from zero, which is half-up for non-negative prices.
	return &Product{sku: sku, name: name, price: price.Round(pricePlaces)}, nil
}

func (p *Product) SKU() string { return p.sku }

func (p *Product) Name() string { return p.name }

// Price returns the rounded price.
func (p *Product) Price() decimal.Decimal { return p.price }

// PriceFloat returns the rounded price as a float64.
func (p *Product) PriceFloat() float64 {
	f, _ := p.price.Float64()
	return f
}

// Equal reports whether both products carry the same SKU.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.sku == other.sku
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{sku='%s', name='%s', price=$%s}", p.sku, p.name, p.price.StringFixed(pricePlaces))
}

type productJSON struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// MarshalJSON encodes the product as {"sku", "name", "price"} with the price
// as a two-place decimal string.
func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{SKU: p.sku, Name: p.name, Price: p.price.StringFixed(pricePlaces)})
}
