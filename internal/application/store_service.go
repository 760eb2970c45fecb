package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abdidvp/shopcart/internal/domain"
)

// Store is a loaded store: the catalog, the stock owner seeded from the
// store file, and the revision the file was read at (empty if unknown).
type Store struct {
	Catalog  *domain.Catalog
	Stock    domain.StockKeeper
	Config   domain.StoreConfig
	Revision string
}

// StoreService orchestrates opening a store:
// load config → build catalog → seed stock → look up revision.
type StoreService struct {
	loader    domain.StoreLoader
	revisions domain.RevisionReader
	logger    *zap.Logger
}

// NewStoreService creates a StoreService. revisions may be nil, in which
// case stores are opened without a revision.
func NewStoreService(loader domain.StoreLoader, revisions domain.RevisionReader, logger *zap.Logger) *StoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreService{loader: loader, revisions: revisions, logger: logger}
}

// Open loads the store file at path and seeds stock with its inventory.
// Existing stock levels in stock are cleared first.
func (s *StoreService) Open(path string, stock domain.StockKeeper) (*Store, error) {
	if stock == nil {
		return nil, &domain.ValidationError{Message: "stock keeper cannot be nil"}
	}

	// 1. Load config
	cfg, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	// 2. Build catalog
	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	// 3. Seed stock
	stock.Clear()
	for sku, qty := range cfg.Inventory {
		if err := stock.Set(sku, qty); err != nil {
			return nil, fmt.Errorf("seeding stock for %s: %w", sku, err)
		}
	}

	store := &Store{Catalog: catalog, Stock: stock, Config: cfg}

	// 4. Attach revision if available
	if s.revisions != nil {
		if hash, err := s.revisions.CommitHash(path); err == nil {
			store.Revision = hash
		}
	}

	if missing := cfg.UnstockedSKUs(); len(missing) > 0 {
		s.logger.Warn("catalog products without stock record",
			zap.Strings("skus", missing))
	}
	s.logger.Info("store opened",
		zap.String("path", path),
		zap.Int("products", catalog.Size()),
		zap.Int("stocked_skus", len(cfg.Inventory)),
		zap.String("revision", store.Revision))

	return store, nil
}
