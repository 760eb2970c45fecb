package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productOut struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func decodeProducts(t *testing.T, out string) []productOut {
	t.Helper()
	var products []productOut
	require.NoError(t, json.Unmarshal([]byte(out), &products), out)
	return products
}

func TestCatalogCommand_DefaultTUI(t *testing.T) {
	out := mustRun(t, "catalog", "--store", fixtureStore)
	assert.Contains(t, out, "Catalog")
	assert.Contains(t, out, "(4)")
	assert.Contains(t, out, "Laptop")
	assert.Contains(t, out, "999.99")
}

func TestCatalogCommand_JSON(t *testing.T) {
	products := decodeProducts(t, mustRun(t, "catalog", "--store", fixtureStore, "--json"))
	require.Len(t, products, 4)
	assert.Equal(t, "SKU001", products[0].SKU)
	assert.Equal(t, "SKU004", products[3].SKU)
	assert.Equal(t, "45.01", products[3].Price, "prices are rounded half-up to cents")
	assert.Equal(t, "89.00", products[2].Price, "prices always carry two places")
}

func TestCatalogCommand_MissingStoreIsEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out := mustRun(t, "catalog", "--store", missing)
	assert.Contains(t, out, "No products found.")
}

func TestCatalogCommand_InvalidStore(t *testing.T) {
	_, err := run(t, "catalog", "--store", invalidStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")

	_, err = run(t, "catalog", "--store", malformedStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestCatalogSearch_CaseInsensitive(t *testing.T) {
	products := decodeProducts(t, mustRun(t, "catalog", "search", "MOUSE", "--store", fixtureStore, "--json"))
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Mouse", products[0].Name)
}

func TestCatalogSearch_NoMatch(t *testing.T) {
	out := mustRun(t, "catalog", "search", "monitor", "--store", fixtureStore)
	assert.Contains(t, out, "No products found.")
}

func TestCatalogRange_Inclusive(t *testing.T) {
	products := decodeProducts(t, mustRun(t, "catalog", "range", "--min", "45.01", "--max", "89", "--store", fixtureStore, "--json"))
	require.Len(t, products, 2)
	assert.Equal(t, "SKU003", products[0].SKU)
	assert.Equal(t, "SKU004", products[1].SKU)
}

func TestCatalogRange_InvalidBounds(t *testing.T) {
	_, err := run(t, "catalog", "range", "--min", "50", "--max", "10", "--store", fixtureStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price range")

	_, err = run(t, "catalog", "range", "--min", "-1", "--max", "10", "--store", fixtureStore)
	require.Error(t, err)
}

func TestCatalogShow(t *testing.T) {
	out := mustRun(t, "catalog", "show", "SKU002", "--store", fixtureStore, "--json")
	var got struct {
		Product   productOut `json:"product"`
		Available int        `json:"available"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "SKU002", got.Product.SKU)
	assert.Equal(t, 3, got.Available)

	out = mustRun(t, "catalog", "show", "SKU003", "--store", fixtureStore)
	assert.Contains(t, out, "Mechanical Keyboard")
	assert.Contains(t, out, "out of stock")
}

func TestCatalogShow_NotFound(t *testing.T) {
	_, err := run(t, "catalog", "show", "GHOST", "--store", fixtureStore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found: GHOST")
}
