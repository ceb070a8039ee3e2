package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/orders/domain"
)

const orderKeyPrefix = "order:"

// RedisOrderRepository persists orders as JSON entries in Redis, one per
// order id.
type RedisOrderRepository struct {
	cache cache.Cache
}

// NewRedisOrderRepository creates a new RedisOrderRepository.
func NewRedisOrderRepository(cache cache.Cache) *RedisOrderRepository {
	return &RedisOrderRepository{cache: cache}
}

func orderKey(id string) string {
	return orderKeyPrefix + id
}

// Save stores the order without expiry.
func (r *RedisOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := r.cache.Set(ctx, orderKey(order.ID), data, 0); err != nil {
		return fmt.Errorf("failed to save order to cache: %w", err)
	}
	return nil
}

// Get fetches an order by id. Returns nil without error when no order with
// that id exists.
func (r *RedisOrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	data, err := r.cache.Get(ctx, orderKey(id))
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order from cache: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

// List returns all stored orders in no particular order.
func (r *RedisOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	keys, err := r.cache.Keys(ctx, orderKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list order keys: %w", err)
	}

	orders := make([]domain.Order, 0, len(keys))
	for _, key := range keys {
		order, err := r.Get(ctx, strings.TrimPrefix(key, orderKeyPrefix))
		if err != nil {
			return nil, err
		}
		if order == nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
