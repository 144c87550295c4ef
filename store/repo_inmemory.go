package store

import (
	"fmt"
	"sync"
)

// InMemoryCartRepo is an in-memory implementation of CartRepo
type InMemoryCartRepo struct {
	mu    sync.RWMutex
	carts map[string]Cart // cartID -> Cart
}

// NewInMemoryCartRepo creates a new in-memory cart repository
func NewInMemoryCartRepo() *InMemoryCartRepo {
	return &InMemoryCartRepo{
		carts: make(map[string]Cart),
	}
}

// Upsert creates or updates a cart
func (r *InMemoryCartRepo) Upsert(cartID string, cart Cart) error {
	if cartID == "" {
		return fmt.Errorf("cartID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy the line slice so callers can't mutate the stored cart.
	items := make([]LineItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items

	r.carts[cartID] = cart
	return nil
}

// Get retrieves a cart by ID
func (r *InMemoryCartRepo) Get(cartID string) (Cart, error) {
	if cartID == "" {
		return Cart{}, fmt.Errorf("cartID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	items := make([]LineItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items

	return cart, nil
}

// Delete removes a cart
func (r *InMemoryCartRepo) Delete(cartID string) error {
	if cartID == "" {
		return fmt.Errorf("cartID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, cartID)
	return nil
}
