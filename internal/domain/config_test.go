package domain_test

import (
	"testing"

	"github.com/abdidvp/shopcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStoreConfig_IsEmpty(t *testing.T) {
	cfg := domain.DefaultStoreConfig()
	assert.NoError(t, cfg.Validate())
	catalog, err := cfg.BuildCatalog()
	require.NoError(t, err)
	assert.True(t, catalog.IsEmpty())
}

func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.StoreConfig
		wantErr string
	}{
		{
			name: "valid",
			cfg: domain.StoreConfig{
				Products:  []domain.ProductSpec{{SKU: "A", Name: "Alpha", Price: 1}},
				Inventory: map[string]int{"A": 0},
			},
		},
		{
			name:    "blank sku",
			cfg:     domain.StoreConfig{Products: []domain.ProductSpec{{SKU: " ", Name: "Alpha", Price: 1}}},
			wantErr: "products[0]",
		},
		{
			name:    "negative price",
			cfg:     domain.StoreConfig{Products: []domain.ProductSpec{{SKU: "A", Name: "Alpha", Price: -2}}},
			wantErr: "cannot be negative",
		},
		{
			name:    "negative stock",
			cfg:     domain.StoreConfig{Inventory: map[string]int{"A": -1}},
			wantErr: `inventory["A"] = -1`,
		},
		{
			name:    "keys that trim to the same sku",
			cfg:     domain.StoreConfig{Inventory: map[string]int{"SKU1": 1, " SKU1 ": 5}},
			wantErr: `inventory keys " SKU1 " and "SKU1" name the same SKU`,
		},
		{
			name:    "empty inventory key",
			cfg:     domain.StoreConfig{Inventory: map[string]int{"": 3}},
			wantErr: "empty SKU",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoreConfig_BuildCatalog_LastWriteWins(t *testing.T) {
	cfg := domain.StoreConfig{Products: []domain.ProductSpec{
		{SKU: "A", Name: "First", Price: 1},
		{SKU: "A", Name: "Second", Price: 2},
		{SKU: "B", Name: "Beta", Price: 3},
	}}
	catalog, err := cfg.BuildCatalog()
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Size())

	p, ok := catalog.FindBySKU("A")
	require.True(t, ok)
	assert.Equal(t, "Second", p.Name())
}

func TestStoreConfig_UnstockedSKUs(t *testing.T) {
	cfg := domain.StoreConfig{
		Products: []domain.ProductSpec{
			{SKU: "A", Name: "Alpha", Price: 1},
			{SKU: " B ", Name: "Beta", Price: 1},
		},
		Inventory: map[string]int{"A": 5},
	}
	assert.Equal(t, []string{"B"}, cfg.UnstockedSKUs())
}
