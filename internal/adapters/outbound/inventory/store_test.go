package inventory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/shopcart/internal/adapters/outbound/inventory"
	"github.com/abdidvp/shopcart/internal/domain"
)

var _ domain.StockKeeper = (*inventory.Store)(nil)

func TestStore_UnknownSKUIsZero(t *testing.T) {
	store := inventory.New()
	assert.Equal(t, 0, store.Available("UNKNOWN_SKU"))
}

func TestStore_SetAndGet(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 50))
	require.NoError(t, store.Set("SKU002", 75))
	require.NoError(t, store.Set("SKU003", 100))

	assert.Equal(t, 50, store.Available("SKU001"))
	assert.Equal(t, 75, store.Available("SKU002"))
	assert.Equal(t, 100, store.Available("SKU003"))
}

func TestStore_SetUpdatesAndAllowsZero(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 100))
	require.NoError(t, store.Set("SKU001", 50))
	assert.Equal(t, 50, store.Available("SKU001"))

	require.NoError(t, store.Set("SKU001", 0))
	assert.Equal(t, 0, store.Available("SKU001"))
}

func TestStore_SetRejectsInvalid(t *testing.T) {
	store := inventory.New()

	err := store.Set("SKU001", -10)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "inventory quantity cannot be negative", err.Error())

	err = store.Set("  ", 10)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, store.Snapshot())
}

func TestStore_Decrease(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		decrease []int
		want     int
	}{
		{"partial", 100, []int{30}, 70},
		{"to exactly zero", 50, []int{50}, 0},
		{"beyond available stops at zero", 30, []int{50}, 0},
		{"multiple", 100, []int{20, 30, 10}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inventory.New()
			require.NoError(t, store.Set("SKU001", tt.initial))
			for _, d := range tt.decrease {
				require.NoError(t, store.Decrease("SKU001", d))
			}
			assert.Equal(t, tt.want, store.Available("SKU001"))
		})
	}
}

func TestStore_DecreaseUnknownStaysZero(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Decrease("UNKNOWN_SKU", 10))
	assert.Equal(t, 0, store.Available("UNKNOWN_SKU"))
}

func TestStore_DecreaseRejectsNegative(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 5))
	err := store.Decrease("SKU001", -3)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 5, store.Available("SKU001"))
}

func TestStore_Clear(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 100))
	require.NoError(t, store.Set("SKU002", 50))

	store.Clear()

	assert.Equal(t, 0, store.Available("SKU001"))
	assert.Equal(t, 0, store.Available("SKU002"))
	assert.Empty(t, store.Snapshot())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 3))

	snap := store.Snapshot()
	snap["SKU001"] = 99
	assert.Equal(t, 3, store.Available("SKU001"))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := inventory.New()
	require.NoError(t, store.Set("SKU001", 1000))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Decrease("SKU001", 1)
		}()
		go func() {
			defer wg.Done()
			_ = store.Available("SKU001")
		}()
	}
	wg.Wait()
	assert.Equal(t, 900, store.Available("SKU001"))
}
