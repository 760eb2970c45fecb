package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OperationKind distinguishes the two cart mutations.
type OperationKind string

const (
	OpAdd    OperationKind = "add"
	OpRemove OperationKind = "remove"
)

// CartOperation is one requested cart mutation.
type CartOperation struct {
	Kind     OperationKind `json:"kind"`
	SKU      string        `json:"sku"`
	Quantity int           `json:"quantity,omitempty"`
}

func (o CartOperation) String() string {
	if o.Kind == OpAdd {
		return fmt.Sprintf("add %s x%d", o.SKU, o.Quantity)
	}
	return fmt.Sprintf("remove %s", o.SKU)
}

// ParseAddOperation parses a "SKU=QTY" argument. A bare "SKU" adds one unit.
func ParseAddOperation(arg string) (CartOperation, error) {
	sku, qty, hasQty := strings.Cut(arg, "=")
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return CartOperation{}, newValidationError("missing SKU in %q", arg)
	}

	quantity := 1
	if hasQty {
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return CartOperation{}, newValidationError("invalid quantity in %q", arg)
		}
		quantity = n
	}
	return CartOperation{Kind: OpAdd, SKU: sku, Quantity: quantity}, nil
}

// CartLine is one rendered row of a cart summary.
type CartLine struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartSummary is a read-only view of a cart for output.
type CartSummary struct {
	SessionID       string          `json:"session_id"`
	Lines           []CartLine      `json:"lines"`
	ItemCount       int             `json:"item_count"`
	Total           decimal.Decimal `json:"total"`
	CatalogRevision string          `json:"catalog_revision,omitempty"`
}

// MarshalJSON writes money fields as two-place decimal strings.
func (l CartLine) MarshalJSON() ([]byte, error) {
	type line CartLine
	return json.Marshal(struct {
		line
		UnitPrice string `json:"unit_price"`
		Subtotal  string `json:"subtotal"`
	}{line(l), l.UnitPrice.StringFixed(pricePlaces), l.Subtotal.StringFixed(pricePlaces)})
}

// MarshalJSON writes the total as a two-place decimal string.
func (s CartSummary) MarshalJSON() ([]byte, error) {
	type summary CartSummary
	return json.Marshal(struct {
		summary
		Total string `json:"total"`
	}{summary(s), s.Total.StringFixed(pricePlaces)})
}

// Summarize builds a summary of cart, naming each line from catalog where
// the product is still listed. Lines are sorted by SKU.
func Summarize(cart *Cart, catalog *Catalog) CartSummary {
	items := cart.Items()
	lines := make([]CartLine, 0, len(items))
	for sku, item := range items {
		line := CartLine{
			SKU:       sku,
			Quantity:  item.Quantity(),
			UnitPrice: item.Price(),
			Subtotal:  item.Subtotal(),
		}
		if p, ok := catalog.FindBySKU(sku); ok {
			line.Name = p.Name()
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].SKU < lines[j].SKU })

	return CartSummary{
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}
}
