package stock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

// MemoryStore is an in-memory Ledger and product reader used in tests and
// local development. A single mutex makes each guard-and-write indivisible,
// mirroring what the conditional UPDATE gives the Postgres ledger.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*catalog.Product
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[uuid.UUID]*catalog.Product)}
}

// Put inserts or replaces a product snapshot.
func (s *MemoryStore) Put(p *catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

// GetByID returns a copy of the product or catalog.ErrProductNotFound.
func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) TrySet(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity < 0 {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return false, nil
	}
	p.StockQuantity = quantity
	return true, nil
}

func (s *MemoryStore) TryDecrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok || p.StockQuantity < quantity {
		return false, nil
	}
	p.StockQuantity -= quantity
	return true, nil
}

func (s *MemoryStore) TryIncrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return false, nil
	}
	p.StockQuantity += quantity
	return true, nil
}
