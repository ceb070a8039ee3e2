package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/menu/domain"
)

const menuKeyPrefix = "menu:"

// RedisMenuRepository implements ports.MenuRepository on the cache port.
type RedisMenuRepository struct {
	cache cache.Cache
}

// NewRedisMenuRepository creates a new RedisMenuRepository.
func NewRedisMenuRepository(c cache.Cache) *RedisMenuRepository {
	return &RedisMenuRepository{
		cache: c,
	}
}

// Save stores the menu item.
func (r *RedisMenuRepository) Save(ctx context.Context, item *domain.MenuItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal menu item: %w", err)
	}

	if err := r.cache.Set(ctx, menuKeyPrefix+item.ID, data, 0); err != nil {
		return fmt.Errorf("failed to save menu item to cache: %w", err)
	}

	return nil
}

// Get retrieves a menu item by id. Returns nil, nil when not found.
func (r *RedisMenuRepository) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	data, err := r.cache.Get(ctx, menuKeyPrefix+id)
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu item from cache: %w", err)
	}

	var item domain.MenuItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu item: %w", err)
	}

	return &item, nil
}

// List returns all menu items ordered by category, then name.
func (r *RedisMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	keys, err := r.cache.Keys(ctx, menuKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list menu keys: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(keys))
	for _, key := range keys {
		data, err := r.cache.Get(ctx, key)
		if err != nil {
			continue
		}
		var item domain.MenuItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal menu item %s: %w", key, err)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// Delete removes a menu item by id.
func (r *RedisMenuRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, menuKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete menu item from cache: %w", err)
	}
	return nil
}
