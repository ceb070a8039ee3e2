package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"canteen-api/internal/features/coupons/domain"
	"canteen-api/internal/features/coupons/ports"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponInactive = errors.New("coupon is not active")
	ErrMinOrderNotMet = errors.New("order subtotal below coupon minimum")
)

// CouponServiceImpl implements ports.CouponService.
type CouponServiceImpl struct {
	repo  ports.CouponRepository
	clock clockwork.Clock
}

// NewCouponService creates a new CouponServiceImpl.
func NewCouponService(repo ports.CouponRepository, clock clockwork.Clock) *CouponServiceImpl {
	return &CouponServiceImpl{
		repo:  repo,
		clock: clock,
	}
}

// normalizeCode makes coupon lookup case-insensitive.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount validates the code against the subtotal and returns the discount
// in cents.
func (s *CouponServiceImpl) Discount(ctx context.Context, code string, subtotalCents int64) (int64, error) {
	coupon, err := s.GetCoupon(ctx, code)
	if err != nil {
		return 0, err
	}

	if !coupon.Active {
		return 0, ErrCouponInactive
	}
	if coupon.Expired(s.clock.Now()) {
		return 0, ErrCouponExpired
	}
	if subtotalCents < coupon.MinOrderCents {
		return 0, ErrMinOrderNotMet
	}

	return coupon.DiscountFor(subtotalCents), nil
}

// GetCoupon fetches a coupon by code.
func (s *CouponServiceImpl) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.repo.Get(ctx, normalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("service: failed to get coupon: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// ListCoupons returns all coupons.
func (s *CouponServiceImpl) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list coupons: %w", err)
	}
	return coupons, nil
}

// UpsertCoupon validates and stores a coupon.
func (s *CouponServiceImpl) UpsertCoupon(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error) {
	coupon.Code = normalizeCode(coupon.Code)
	if err := coupon.Validate(); err != nil {
		return nil, err
	}
	if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = s.clock.Now()
	}

	if err := s.repo.Save(ctx, &coupon); err != nil {
		return nil, fmt.Errorf("service: failed to save coupon: %w", err)
	}
	return &coupon, nil
}

// DeleteCoupon removes a coupon by code.
func (s *CouponServiceImpl) DeleteCoupon(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, normalizeCode(code)); err != nil {
		return fmt.Errorf("service: failed to delete coupon: %w", err)
	}
	return nil
}
