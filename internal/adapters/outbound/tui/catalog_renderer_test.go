package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/tui"
	"github.com/abdidvp/shopcart/internal/domain"
)

func sampleProducts(t *testing.T) []*domain.Product {
	t.Helper()
	a, err := domain.NewProduct("SKU001", "Laptop", 999.99)
	require.NoError(t, err)
	b, err := domain.NewProduct("SKU002", "Wireless Mouse", 25.5)
	require.NoError(t, err)
	return []*domain.Product{a, b}
}

func TestRenderCatalog_ListsProducts(t *testing.T) {
	output := tui.RenderCatalog("Catalog", sampleProducts(t))
	assert.Contains(t, output, "Catalog")
	assert.Contains(t, output, "(2)")
	assert.Contains(t, output, "SKU001")
	assert.Contains(t, output, "Wireless Mouse")
	assert.Contains(t, output, "25.50")
}

func TestRenderCatalog_Empty(t *testing.T) {
	output := tui.RenderCatalog("Search: monitor", nil)
	assert.Contains(t, output, "No products found.")
}

func TestRenderProduct_StockBadges(t *testing.T) {
	p := sampleProducts(t)[0]
	assert.Contains(t, tui.RenderProduct(p, 0), "out of stock")
	assert.Contains(t, tui.RenderProduct(p, 3), "3 left")
	assert.Contains(t, tui.RenderProduct(p, 10), "10 in stock")
	assert.Contains(t, tui.RenderProduct(p, 10), "999.99")
}

func TestRenderInventory(t *testing.T) {
	output := tui.RenderInventory(map[string]int{"SKU002": 0, "SKU001": 12}, []string{"SKU003"})
	assert.Contains(t, output, "Inventory")
	assert.Contains(t, output, "12 in stock")
	assert.Contains(t, output, "out of stock")
	assert.Contains(t, output, "No stock record")
	assert.Contains(t, output, "SKU003")
	assert.Less(t, strings.Index(output, "SKU001"), strings.Index(output, "SKU002"), "sorted by SKU")
}

