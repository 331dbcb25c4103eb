package cart

import (
	"errors"
	"sync"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
)

var (
	ErrItemNotFound    = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Store holds the local cart: a map keyed by product id plus the
// insertion order for display. Every mutation returns a fresh snapshot;
// callers never see internal state. Invariants held on every mutation:
// no quantity below 1, no zero-quantity item left behind.
type Store struct {
	mu    sync.RWMutex
	items map[string]domain.CartItem
	order []string // product ids, insertion order
}

func NewStore() *Store {
	return &Store{
		items: make(map[string]domain.CartItem),
	}
}

// Add inserts a new item or increments an existing one's quantity.
func (s *Store) Add(product domain.Product, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return s.Snapshot(), ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.items[product.ID]; ok {
		existing.Quantity += quantity
		s.items[product.ID] = existing
	} else {
		s.items[product.ID] = domain.CartItem{Product: product, Quantity: quantity}
		s.order = append(s.order, product.ID)
	}
	return s.snapshotLocked(), nil
}

// Increase raises the quantity of an existing item by amount.
func (s *Store) Increase(productID string, amount int) (domain.Cart, error) {
	if amount <= 0 {
		return s.Snapshot(), ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productID]
	if !ok {
		return s.snapshotLocked(), ErrItemNotFound
	}
	item.Quantity += amount
	s.items[productID] = item
	return s.snapshotLocked(), nil
}

// Decrease lowers the quantity of an existing item by amount, clamped
// at zero. An item whose quantity reaches zero is removed entirely.
func (s *Store) Decrease(productID string, amount int) (domain.Cart, error) {
	if amount <= 0 {
		return s.Snapshot(), ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productID]
	if !ok {
		return s.snapshotLocked(), ErrItemNotFound
	}
	item.Quantity -= amount
	if item.Quantity <= 0 {
		s.removeLocked(productID)
	} else {
		s.items[productID] = item
	}
	return s.snapshotLocked(), nil
}

// Remove deletes the item unconditionally. Removing an absent item is
// a no-op.
func (s *Store) Remove(productID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	return s.snapshotLocked()
}

// Replace overwrites the cart wholesale with the given items. Used when
// reconciling with an authoritative server response. Items with a
// non-positive quantity are dropped to keep the store invariants.
func (s *Store) Replace(items []domain.CartItem) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]domain.CartItem, len(items))
	s.order = s.order[:0]
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if existing, ok := s.items[it.Product.ID]; ok {
			existing.Quantity += it.Quantity
			s.items[it.Product.ID] = existing
			continue
		}
		s.items[it.Product.ID] = it
		s.order = append(s.order, it.Product.ID)
	}
	return s.snapshotLocked()
}

// Clear empties the cart.
func (s *Store) Clear() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]domain.CartItem)
	s.order = s.order[:0]
	return s.snapshotLocked()
}

func (s *Store) Get(productID string) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[productID]
	return item, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Snapshot returns an immutable copy of the cart in insertion order.
func (s *Store) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domain.Cart {
	items := make([]domain.CartItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return domain.Cart{Items: items}
}

func (s *Store) removeLocked(productID string) {
	if _, ok := s.items[productID]; !ok {
		return
	}
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
