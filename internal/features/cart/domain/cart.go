package domain

import (
	"errors"
	"time"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartItem is a menu item line inside a cart. The unit price is captured at
// add time and re-priced by the service against the current menu.
type CartItem struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// LineTotal returns the total for this line.
func (i CartItem) LineTotal() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// Cart holds a customer's pending order lines.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for the customer.
func NewCart(customerID string) *Cart {
	return &Cart{
		CustomerID: customerID,
		UpdatedAt:  time.Now(),
	}
}

// Add merges the given quantity into an existing line or appends a new one.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].UnitPriceCents = item.UnitPriceCents
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity replaces the quantity of an existing line. Returns false when
// the item is not in the cart.
func (c *Cart) SetQuantity(itemID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes a line. Returns false when the item is not in the cart.
func (c *Cart) Remove(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
