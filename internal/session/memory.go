package session

import (
	"context"
	"sync"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

// MemoryStore is the single-instance fallback when no Redis is
// configured.
type MemoryStore struct {
	mu      sync.RWMutex
	coupons map[string]domain.AppliedCoupon
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{coupons: make(map[string]domain.AppliedCoupon)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*domain.AppliedCoupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	coupon, ok := m.coupons[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	c := coupon
	return &c, nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID string, coupon *domain.AppliedCoupon) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.coupons[sessionID] = *coupon
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.coupons, sessionID)
	return nil
}
