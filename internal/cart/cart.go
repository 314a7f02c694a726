// Package cart holds the in-memory shopping cart for one customer session.
// All mutations are pure in-memory list operations with no-op fallbacks for
// "not found" cases; nothing here can fail or touch persistence.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

// Item is one cart line: a product and how many of it the customer wants.
// An Item present in a cart always has Qty >= 1; a line whose quantity
// drops to zero is removed, never retained.
type Item struct {
	Product domain.Product
	Qty     int
}

// LineTotal is price times quantity for this line.
func (it Item) LineTotal() decimal.Decimal {
	return it.Product.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
}

// Cart is an ordered list of lines, at most one per product ID.
// It is not safe for concurrent use; callers own the synchronization
// (one cart belongs to one session).
type Cart struct {
	items []Item
}

func New() *Cart { return &Cart{} }

func (c *Cart) find(p domain.Product) int {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			return i
		}
	}
	return -1
}

// AddItem merges onto an existing line for the same product, otherwise
// appends a new line with quantity 1. Stock is not checked here; the
// checkout path is where availability gets enforced.
func (c *Cart) AddItem(p domain.Product) {
	if i := c.find(p); i >= 0 {
		c.items[i].Qty++
		return
	}
	c.items = append(c.items, Item{Product: p, Qty: 1})
}

// RemoveItem deletes the line for p regardless of quantity. No-op if absent.
func (c *Cart) RemoveItem(p domain.Product) {
	if i := c.find(p); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// IncreaseQuantity bumps an existing line by one. Unlike AddItem it never
// creates a line: incrementing something not in the cart is a no-op.
func (c *Cart) IncreaseQuantity(p domain.Product) {
	if i := c.find(p); i >= 0 {
		c.items[i].Qty++
	}
}

// DecreaseQuantity drops an existing line by one, removing the line
// entirely when the quantity reaches zero.
func (c *Cart) DecreaseQuantity(p domain.Product) {
	i := c.find(p)
	if i < 0 {
		return
	}
	c.items[i].Qty--
	if c.items[i].Qty <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// ItemCount is the sum of quantities across all lines, computed on demand.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Qty
	}
	return n
}

// Subtotal sums price*qty over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.items = nil }

// Items returns a copy of the lines. Checkout consumes this snapshot;
// mutating the returned slice does not touch the cart.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct lines (not the total quantity).
func (c *Cart) Len() int { return len(c.items) }
