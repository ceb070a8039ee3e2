package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/maintenance/domain"
)

const statusKey = "maintenance:status"

// RedisStatusRepository persists the maintenance switch as a single JSON
// entry in Redis.
type RedisStatusRepository struct {
	cache cache.Cache
}

// NewRedisStatusRepository creates a new RedisStatusRepository.
func NewRedisStatusRepository(cache cache.Cache) *RedisStatusRepository {
	return &RedisStatusRepository{cache: cache}
}

// Save stores the status without expiry.
func (r *RedisStatusRepository) Save(ctx context.Context, status *domain.Status) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal maintenance status: %w", err)
	}
	if err := r.cache.Set(ctx, statusKey, data, 0); err != nil {
		return fmt.Errorf("failed to save maintenance status to cache: %w", err)
	}
	return nil
}

// Get fetches the status. Returns nil without error when none was stored.
func (r *RedisStatusRepository) Get(ctx context.Context) (*domain.Status, error) {
	data, err := r.cache.Get(ctx, statusKey)
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get maintenance status from cache: %w", err)
	}

	var status domain.Status
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal maintenance status: %w", err)
	}
	return &status, nil
}
