package adapters

import (
	"context"
	"testing"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/menu/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisMenuRepository {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisMenuRepository(adapter)
}

func TestRedisMenuRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := &domain.MenuItem{ID: "m1", Name: "Veg Thali", Category: "lunch", PriceCents: 8500, Available: true}
	require.NoError(t, repo.Save(ctx, item))

	got, err := repo.Get(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Veg Thali", got.Name)
	assert.EqualValues(t, 8500, got.PriceCents)
	assert.True(t, got.Available)
}

func TestRedisMenuRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisMenuRepository_ListSorted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.MenuItem{ID: "m1", Name: "Veg Thali", Category: "lunch", PriceCents: 8500}))
	require.NoError(t, repo.Save(ctx, &domain.MenuItem{ID: "m2", Name: "Filter Coffee", Category: "drinks", PriceCents: 2500}))
	require.NoError(t, repo.Save(ctx, &domain.MenuItem{ID: "m3", Name: "Masala Chai", Category: "drinks", PriceCents: 2000}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Filter Coffee", items[0].Name)
	assert.Equal(t, "Masala Chai", items[1].Name)
	assert.Equal(t, "Veg Thali", items[2].Name)
}

func TestRedisMenuRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.MenuItem{ID: "m1", Name: "Samosa", Category: "snacks", PriceCents: 1500}))
	require.NoError(t, repo.Delete(ctx, "m1"))

	got, err := repo.Get(ctx, "m1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
