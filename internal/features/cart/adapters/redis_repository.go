package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/cart/domain"
)

const (
	cartKeyPrefix = "cart:"

	// Abandoned carts expire on their own.
	cartTTL = 24 * time.Hour
)

// RedisCartRepository persists carts as JSON entries in Redis, one per
// customer, with a sliding expiry refreshed on every save.
type RedisCartRepository struct {
	cache cache.Cache
}

// NewRedisCartRepository creates a new RedisCartRepository.
func NewRedisCartRepository(cache cache.Cache) *RedisCartRepository {
	return &RedisCartRepository{cache: cache}
}

func cartKey(customerID string) string {
	return cartKeyPrefix + customerID
}

// Save stores the cart and refreshes its expiry.
func (r *RedisCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.cache.Set(ctx, cartKey(cart.CustomerID), data, cartTTL); err != nil {
		return fmt.Errorf("failed to save cart to cache: %w", err)
	}
	return nil
}

// Get fetches a cart by customer id. Returns nil without error when the
// customer has no stored cart.
func (r *RedisCartRepository) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	data, err := r.cache.Get(ctx, cartKey(customerID))
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart from cache: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Delete removes the customer's cart.
func (r *RedisCartRepository) Delete(ctx context.Context, customerID string) error {
	if err := r.cache.Delete(ctx, cartKey(customerID)); err != nil {
		return fmt.Errorf("failed to delete cart from cache: %w", err)
	}
	return nil
}
