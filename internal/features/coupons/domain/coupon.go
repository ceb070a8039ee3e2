package domain

import (
	"errors"
	"strings"
	"time"
)

// CouponKind discriminates how a coupon's value is applied.
type CouponKind string

const (
	// KindPercent takes Value as a percentage of the subtotal.
	KindPercent CouponKind = "percent"
	// KindFlat takes Value as a fixed amount in cents.
	KindFlat CouponKind = "flat"
)

var (
	ErrMissingCode     = errors.New("coupon code is required")
	ErrInvalidKind     = errors.New("coupon kind must be 'percent' or 'flat'")
	ErrInvalidValue    = errors.New("coupon value must be positive")
	ErrPercentTooLarge = errors.New("percent coupon value cannot exceed 100")
	ErrInvalidMinOrder = errors.New("minimum order amount cannot be negative")
)

// Coupon represents a discount code redeemable at checkout.
type Coupon struct {
	Code          string     `json:"code"`
	Kind          CouponKind `json:"kind"`
	Value         int64      `json:"value"`
	MinOrderCents int64      `json:"min_order_cents"`
	ExpiresAt     time.Time  `json:"expires_at"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Validate checks the coupon's structural invariants.
func (c *Coupon) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrMissingCode
	}
	if c.Kind != KindPercent && c.Kind != KindFlat {
		return ErrInvalidKind
	}
	if c.Value <= 0 {
		return ErrInvalidValue
	}
	if c.Kind == KindPercent && c.Value > 100 {
		return ErrPercentTooLarge
	}
	if c.MinOrderCents < 0 {
		return ErrInvalidMinOrder
	}
	return nil
}

// Expired reports whether the coupon is past its expiry at the given time.
// A zero ExpiresAt means the coupon never expires.
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// DiscountFor computes the discount in cents for the given subtotal. The
// discount never exceeds the subtotal.
func (c *Coupon) DiscountFor(subtotalCents int64) int64 {
	var discount int64
	switch c.Kind {
	case KindPercent:
		discount = subtotalCents * c.Value / 100
	case KindFlat:
		discount = c.Value
	}
	if discount > subtotalCents {
		discount = subtotalCents
	}
	return discount
}
