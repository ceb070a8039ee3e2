package ports

import (
	"context"

	"canteen-api/internal/features/coupons/domain"
)

// CouponService defines the primary port for coupon operations.
type CouponService interface {
	// Discount validates the code against the subtotal and returns the
	// discount in cents.
	Discount(ctx context.Context, code string, subtotalCents int64) (int64, error)
	GetCoupon(ctx context.Context, code string) (*domain.Coupon, error)
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	UpsertCoupon(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, code string) error
}

// CouponRepository defines the secondary port for coupon storage.
type CouponRepository interface {
	Save(ctx context.Context, coupon *domain.Coupon) error
	Get(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Delete(ctx context.Context, code string) error
}
