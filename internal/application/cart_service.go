package application

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abdidvp/shopcart/internal/domain"
)

// CartService owns one cart session. It serializes every call so that the
// availability check and the write inside AddItem are never interleaved
// with another mutation of the same cart.
type CartService struct {
	mu       sync.Mutex
	id       uuid.UUID
	cart     *domain.Cart
	catalog  *domain.Catalog
	revision string
	logger   *zap.Logger
}

// NewCartService starts an empty cart session against store.
func NewCartService(store *Store, logger *zap.Logger) (*CartService, error) {
	if store == nil {
		return nil, &domain.ValidationError{Message: "store cannot be nil"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cart, err := domain.NewCart(store.Catalog, store.Stock)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	return &CartService{
		id:       id,
		cart:     cart,
		catalog:  store.Catalog,
		revision: store.Revision,
		logger:   logger.With(zap.String("cart", id.String())),
	}, nil
}

// ID identifies the session in logs and summaries.
func (s *CartService) ID() uuid.UUID {
	return s.id
}

// Add adds quantity units of sku to the cart.
func (s *CartService) Add(sku string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(sku, quantity)
}

// Remove removes sku from the cart.
func (s *CartService) Remove(sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(sku)
}

// Apply runs ops in order and stops at the first failure. It returns how
// many operations succeeded.
func (s *CartService) Apply(ops []domain.CartOperation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, op := range ops {
		var err error
		switch op.Kind {
		case domain.OpAdd:
			err = s.add(op.SKU, op.Quantity)
		case domain.OpRemove:
			err = s.remove(op.SKU)
		default:
			err = &domain.ValidationError{Message: fmt.Sprintf("unknown operation %q", op.Kind)}
		}
		if err != nil {
			return i, fmt.Errorf("%s: %w", op, err)
		}
	}
	return len(ops), nil
}

// Summary returns a sorted, read-only view of the cart.
func (s *CartService) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.Summarize(s.cart, s.catalog)
	summary.SessionID = s.id.String()
	summary.CatalogRevision = s.revision
	return summary
}

func (s *CartService) add(sku string, quantity int) error {
	err := s.cart.AddItem(sku, quantity)
	if err == nil {
		item, _ := s.cart.Item(strings.TrimSpace(sku))
		s.logger.Info("item added",
			zap.String("sku", sku),
			zap.Int("quantity", quantity),
			zap.Int("cart_quantity", item.Quantity()),
			zap.String("total", s.cart.Total().StringFixed(2)))
		return nil
	}

	if shortage, ok := domain.AsInsufficientInventory(err); ok {
		s.logger.Warn("add rejected: insufficient inventory",
			zap.String("sku", shortage.SKU),
			zap.Int("requested", shortage.Requested),
			zap.Int("available", shortage.Available))
	} else {
		s.logger.Warn("add rejected", zap.String("sku", sku), zap.Error(err))
	}
	return err
}

func (s *CartService) remove(sku string) error {
	if err := s.cart.RemoveItem(sku); err != nil {
		s.logger.Warn("remove rejected", zap.String("sku", sku), zap.Error(err))
		return err
	}
	s.logger.Info("item removed", zap.String("sku", sku))
	return nil
}
