package inventory

import (
	"strings"
	"sync"

	"github.com/abdidvp/shopcart/internal/domain"
)

// Store is an in-memory implementation of domain.StockKeeper.
type Store struct {
	mu    sync.RWMutex
	stock map[string]int
}

// New creates an empty in-memory inventory.
func New() *Store {
	return &Store{stock: make(map[string]int)}
}

// Available returns the stock level for sku, or 0 if it is unknown.
func (s *Store) Available(sku string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock[sku]
}

// Set replaces the stock level for sku.
func (s *Store) Set(sku string, quantity int) error {
	if strings.TrimSpace(sku) == "" {
		return &domain.ValidationError{Message: "SKU cannot be empty"}
	}
	if quantity < 0 {
		return &domain.ValidationError{Message: "inventory quantity cannot be negative"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[sku] = quantity
	return nil
}

// Decrease lowers the stock level for sku by quantity, stopping at zero.
// Unknown SKUs stay at zero.
func (s *Store) Decrease(sku string, quantity int) error {
	if quantity < 0 {
		return &domain.ValidationError{Message: "decrease quantity cannot be negative"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[sku] = max(0, s.stock[sku]-quantity)
	return nil
}

// Clear drops every stock level.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = make(map[string]int)
}

// Snapshot returns a copy of all known stock levels.
func (s *Store) Snapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.stock))
	for sku, qty := range s.stock {
		out[sku] = qty
	}
	return out
}
