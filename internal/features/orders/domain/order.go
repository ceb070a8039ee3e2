package domain

import (
	"errors"
	"time"
)

// OrderStatus tracks an order through the kitchen.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrOrderAlreadyFinished = errors.New("order already completed or cancelled")
)

// transitions maps each status to the statuses it may move to.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:    {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidStatus reports whether s names a known order status.
func ValidStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// OrderItem is a priced line frozen at checkout time.
type OrderItem struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// Order is a placed order with a payment reference from the gateway.
type Order struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customer_id"`
	Items            []OrderItem `json:"items"`
	SubtotalCents    int64       `json:"subtotal_cents"`
	DiscountCents    int64       `json:"discount_cents"`
	TotalCents       int64       `json:"total_cents"`
	CouponCode       string      `json:"coupon_code,omitempty"`
	Status           OrderStatus `json:"status"`
	PaymentReference string      `json:"payment_reference"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Transition moves the order to the given status, enforcing the kitchen
// workflow.
func (o *Order) Transition(to OrderStatus) error {
	if !ValidStatus(to) {
		return ErrInvalidStatus
	}
	if o.Status == StatusCompleted || o.Status == StatusCancelled {
		return ErrOrderAlreadyFinished
	}
	for _, allowed := range transitions[o.Status] {
		if allowed == to {
			o.Status = to
			return nil
		}
	}
	return ErrInvalidTransition
}
