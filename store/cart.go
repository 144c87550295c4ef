package store

import "time"

// LineItem is one (product, quantity) pair in a cart. An item present in a
// cart always has quantity >= 1; reaching zero removes the line entirely.
type LineItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// SubtotalCents is the line total (unit price x quantity).
func (li LineItem) SubtotalCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}

// Cart is the in-memory ledger of what a visitor intends to buy. Lines keep
// insertion order. None of its operations can fail; inputs are clamped, not
// validated.
type Cart struct {
	ID        string
	Items     []LineItem
	CreatedAt time.Time
}

// NewCart creates an empty cart.
func NewCart(id string, now time.Time) Cart {
	return Cart{ID: id, CreatedAt: now}
}

// AddItem puts one unit of the product in the cart: a new line at quantity 1,
// or +1 on the existing line.
func (c *Cart) AddItem(p Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       1,
	})
}

// ChangeQuantity adds delta (positive or negative) to the named line,
// clamped at zero. A line that reaches zero is dropped. Unknown product IDs
// are a no-op.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		quantity := c.Items[i].Quantity + delta
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
		c.Items[i].Quantity = quantity
		return
	}
}

// RemoveItem drops the named line if present.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// TotalCents is the sum of line subtotals.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, li := range c.Items {
		total += li.SubtotalCents()
	}
	return total
}

// Count is the total unit count across all lines.
func (c *Cart) Count() int {
	var count int
	for _, li := range c.Items {
		count += li.Quantity
	}
	return count
}
