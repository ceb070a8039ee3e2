package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/push/domain"
)

const subscriptionKeyPrefix = "push:"

// RedisSubscriptionRepository persists push subscriptions as JSON entries in
// Redis, keyed by a hash of the endpoint URL.
type RedisSubscriptionRepository struct {
	cache cache.Cache
}

// NewRedisSubscriptionRepository creates a new RedisSubscriptionRepository.
func NewRedisSubscriptionRepository(cache cache.Cache) *RedisSubscriptionRepository {
	return &RedisSubscriptionRepository{cache: cache}
}

func subscriptionKey(endpoint string) string {
	return subscriptionKeyPrefix + domain.EndpointHash(endpoint)
}

// Save stores the subscription, overwriting any previous one for the same
// endpoint.
func (r *RedisSubscriptionRepository) Save(ctx context.Context, sub *domain.Subscription) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal subscription: %w", err)
	}
	if err := r.cache.Set(ctx, subscriptionKey(sub.Endpoint), data, 0); err != nil {
		return fmt.Errorf("failed to save subscription to cache: %w", err)
	}
	return nil
}

// Delete removes the subscription for the endpoint.
func (r *RedisSubscriptionRepository) Delete(ctx context.Context, endpoint string) error {
	if err := r.cache.Delete(ctx, subscriptionKey(endpoint)); err != nil {
		return fmt.Errorf("failed to delete subscription from cache: %w", err)
	}
	return nil
}

// List returns all subscriptions sorted by endpoint.
func (r *RedisSubscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	keys, err := r.cache.Keys(ctx, subscriptionKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription keys: %w", err)
	}

	subs := make([]domain.Subscription, 0, len(keys))
	for _, key := range keys {
		data, err := r.cache.Get(ctx, key)
		if err != nil {
			if strings.Contains(err.Error(), "key not found") {
				continue
			}
			return nil, fmt.Errorf("failed to get subscription from cache: %w", err)
		}

		var sub domain.Subscription
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].Endpoint < subs[j].Endpoint
	})
	return subs, nil
}
