package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/media/domain"
)

const bannerKeyPrefix = "banner:"

// RedisBannerRepository implements ports.BannerRepository on the cache port.
// Each banner is stored as one JSON entry under banner:<id>.
type RedisBannerRepository struct {
	cache cache.Cache
}

// NewRedisBannerRepository creates a new RedisBannerRepository.
func NewRedisBannerRepository(c cache.Cache) *RedisBannerRepository {
	return &RedisBannerRepository{
		cache: c,
	}
}

// Save stores the banner.
func (r *RedisBannerRepository) Save(ctx context.Context, banner *domain.Banner) error {
	data, err := json.Marshal(banner)
	if err != nil {
		return fmt.Errorf("failed to marshal banner: %w", err)
	}

	if err := r.cache.Set(ctx, bannerKeyPrefix+banner.ID, data, 0); err != nil {
		return fmt.Errorf("failed to save banner to cache: %w", err)
	}

	return nil
}

// Get retrieves a banner by id. Returns nil, nil when not found.
func (r *RedisBannerRepository) Get(ctx context.Context, id string) (*domain.Banner, error) {
	data, err := r.cache.Get(ctx, bannerKeyPrefix+id)
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get banner from cache: %w", err)
	}

	var banner domain.Banner
	if err := json.Unmarshal(data, &banner); err != nil {
		return nil, fmt.Errorf("failed to unmarshal banner: %w", err)
	}

	return &banner, nil
}

// List returns all banners ordered by DisplayOrder.
func (r *RedisBannerRepository) List(ctx context.Context) ([]domain.Banner, error) {
	keys, err := r.cache.Keys(ctx, bannerKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list banner keys: %w", err)
	}

	banners := make([]domain.Banner, 0, len(keys))
	for _, key := range keys {
		data, err := r.cache.Get(ctx, key)
		if err != nil {
			// Key expired or was removed between scan and get.
			continue
		}
		var banner domain.Banner
		if err := json.Unmarshal(data, &banner); err != nil {
			return nil, fmt.Errorf("failed to unmarshal banner %s: %w", key, err)
		}
		banners = append(banners, banner)
	}

	sort.SliceStable(banners, func(i, j int) bool {
		if banners[i].DisplayOrder != banners[j].DisplayOrder {
			return banners[i].DisplayOrder < banners[j].DisplayOrder
		}
		return banners[i].ID < banners[j].ID
	})

	return banners, nil
}

// Delete removes a banner by id.
func (r *RedisBannerRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, bannerKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete banner from cache: %w", err)
	}
	return nil
}
