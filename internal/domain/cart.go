package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a cart. The unit price is captured when the SKU
// is first added and is not re-read from the catalog afterwards.
type CartItem struct {
	sku      string
	quantity int
	price    decimal.Decimal
}

func newCartItem(sku string, quantity int, price decimal.Decimal) (*CartItem, error) {
	if sku == "" {
		return nil, newValidationError("SKU cannot be empty")
	}
	if quantity <= 0 {
		return nil, newValidationError("quantity must be greater than 0")
	}
	if price.IsNegative() {
		return nil, newValidationError("price cannot be negative")
	}
	return &CartItem{sku: sku, quantity: quantity, price: price}, nil
}

func (i CartItem) SKU() string { return i.sku }

func (i CartItem) Quantity() int { return i.quantity }

// Price is the unit price pinned at first add.
func (i CartItem) Price() decimal.Decimal { return i.price }

// Subtotal is price × quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i CartItem) String() string {
	return fmt.Sprintf("CartItem{sku='%s', quantity=%d, price=%s}", i.sku, i.quantity, i.price.StringFixed(pricePlaces))
}

func (i *CartItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return newValidationError("quantity must be greater than 0")
	}
	i.quantity = quantity
	return nil
}

// Cart collects SKU selections against a catalog, admitting an addition
// only when the inventory covers the cumulative quantity for that SKU.
//
// A Cart is not safe for concurrent use. Callers sharing one must
// serialize every call, because AddItem reads availability and then
// mutates the cart.
type Cart struct {
	catalog   *Catalog
	inventory Inventory
	items     map[string]*CartItem
}

// NewCart creates an empty cart bound to catalog and inventory. Neither is
// owned or mutated by the cart.
func NewCart(catalog *Catalog, inventory Inventory) (*Cart, error) {
	if catalog == nil {
		return nil, newValidationError("catalog cannot be nil")
	}
	if inventory == nil {
		return nil, newValidationError("inventory cannot be nil")
	}
	return &Cart{
		catalog:   catalog,
		inventory: inventory,
		items:     make(map[string]*CartItem),
	}, nil
}

// AddItem adds quantity units of sku. The inventory is queried exactly once;
// if the quantity already in the cart plus quantity exceeds what is
// available, an *InsufficientInventoryError is returned and the cart is
// left untouched.
//
// sku is resolved through the catalog, so surrounding whitespace is ignored:
// the inventory is queried and the line is stored under the catalog's
// trimmed SKU. HasItem, Item and RemoveItem match the SKU exactly as given,
// so AddItem(" SKU1 ", 1) is found by HasItem("SKU1"), not HasItem(" SKU1 ").
func (c *Cart) AddItem(sku string, quantity int) error {
	if quantity <= 0 {
		return newValidationError("quantity must be greater than 0")
	}

	product, ok := c.catalog.FindBySKU(sku)
	if !ok {
		return newValidationError("product not found in catalog: %s", sku)
	}
	key := product.SKU()

	available := c.inventory.Available(key)

	current := 0
	existing, present := c.items[key]
	if present {
		current = existing.quantity
	}
	required := current + quantity

	if required > available {
		return &InsufficientInventoryError{SKU: key, Requested: required, Available: available}
	}

	if present {
		return existing.setQuantity(required)
	}

	item, err := newCartItem(key, quantity, product.Price())
	if err != nil {
		return err
	}
	c.items[key] = item
	return nil
}

// RemoveItem deletes sku from the cart. Stock is not returned to the
// inventory; restocking belongs to the inventory owner.
func (c *Cart) RemoveItem(sku string) error {
	if _, ok := c.items[sku]; !ok {
		return newValidationError("item not found in cart: %s", sku)
	}
	delete(c.items, sku)
	return nil
}

// Total sums every line's subtotal. An empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the number of distinct SKUs, not units.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

// HasItem reports whether a line is stored under exactly sku. Lines are
// keyed by the trimmed catalog SKU; see AddItem.
func (c *Cart) HasItem(sku string) bool {
	_, ok := c.items[sku]
	return ok
}

// Item returns a copy of the line for sku.
func (c *Cart) Item(sku string) (CartItem, bool) {
	item, ok := c.items[sku]
	if !ok {
		return CartItem{}, false
	}
	return *item, true
}

// Items returns a snapshot of the cart lines. Changing the returned map does
// not affect the cart.
func (c *Cart) Items() map[string]CartItem {
	snapshot := make(map[string]CartItem, len(c.items))
	for sku, item := range c.items {
		snapshot[sku] = *item
	}
	return snapshot
}
