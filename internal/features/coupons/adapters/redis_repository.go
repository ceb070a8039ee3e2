package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/coupons/domain"
)

const couponKeyPrefix = "coupon:"

// RedisCouponRepository persists coupons as JSON entries in Redis, one per
// code.
type RedisCouponRepository struct {
	cache cache.Cache
}

// NewRedisCouponRepository creates a new RedisCouponRepository.
func NewRedisCouponRepository(cache cache.Cache) *RedisCouponRepository {
	return &RedisCouponRepository{cache: cache}
}

func couponKey(code string) string {
	return couponKeyPrefix + code
}

// Save stores the coupon without expiry. Coupon expiry is a domain concern,
// not a storage one.
func (r *RedisCouponRepository) Save(ctx context.Context, coupon *domain.Coupon) error {
	data, err := json.Marshal(coupon)
	if err != nil {
		return fmt.Errorf("failed to marshal coupon: %w", err)
	}
	if err := r.cache.Set(ctx, couponKey(coupon.Code), data, 0); err != nil {
		return fmt.Errorf("failed to save coupon to cache: %w", err)
	}
	return nil
}

// Get fetches a coupon by code. Returns nil without error when no coupon
// with that code exists.
func (r *RedisCouponRepository) Get(ctx context.Context, code string) (*domain.Coupon, error) {
	data, err := r.cache.Get(ctx, couponKey(code))
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get coupon from cache: %w", err)
	}

	var coupon domain.Coupon
	if err := json.Unmarshal(data, &coupon); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coupon: %w", err)
	}
	return &coupon, nil
}

// List returns all coupons sorted by code.
func (r *RedisCouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	keys, err := r.cache.Keys(ctx, couponKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list coupon keys: %w", err)
	}

	coupons := make([]domain.Coupon, 0, len(keys))
	for _, key := range keys {
		coupon, err := r.Get(ctx, strings.TrimPrefix(key, couponKeyPrefix))
		if err != nil {
			return nil, err
		}
		if coupon == nil {
			// Deleted between scan and fetch.
			continue
		}
		coupons = append(coupons, *coupon)
	}

	sort.Slice(coupons, func(i, j int) bool {
		return coupons[i].Code < coupons[j].Code
	})
	return coupons, nil
}

// Delete removes a coupon by code.
func (r *RedisCouponRepository) Delete(ctx context.Context, code string) error {
	if err := r.cache.Delete(ctx, couponKey(code)); err != nil {
		return fmt.Errorf("failed to delete coupon from cache: %w", err)
	}
	return nil
}
