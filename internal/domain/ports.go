package domain

// Inventory reports how many units of a SKU are available to sell.
// Unknown SKUs report 0. Implementations must not reserve or decrement
// stock as a side effect of being queried.
type Inventory interface {
	Available(sku string) int
}

// StockKeeper is the owner-side view of an inventory: whatever owns stock
// levels (seeding, fulfillment) mutates them through it. The cart only
// ever uses the embedded Inventory.
type StockKeeper interface {
	Inventory
	Set(sku string, quantity int) error
	Decrease(sku string, quantity int) error
	Clear()
	Snapshot() map[string]int
}

// StoreLoader reads a store definition (catalog and stock levels).
type StoreLoader interface {
	Load(path string) (StoreConfig, error)
}

// RevisionReader reports the version-control revision a file belongs to.
type RevisionReader interface {
	CommitHash(path string) (string, error)
}
