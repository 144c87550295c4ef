package store

import "errors"

// ErrCartNotFound is returned when a cart ID has no live cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepo stores visitor carts between requests. Carts are in-memory only
// and vanish with the process; there is no durability guarantee.
type CartRepo interface {
	Upsert(cartID string, cart Cart) error
	Get(cartID string) (Cart, error)
	Delete(cartID string) error
}
