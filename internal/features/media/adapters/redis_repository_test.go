package adapters

import (
	"context"
	"testing"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/media/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisBannerRepository {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisBannerRepository(adapter)
}

func TestRedisBannerRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	banner := &domain.Banner{
		ID:            "b1",
		Type:          domain.BannerTypeImage,
		FileReference: "media/b1.jpg",
		MimeType:      "image/jpeg",
		DisplayOrder:  1,
	}

	require.NoError(t, repo.Save(ctx, banner))

	got, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, banner.ID, got.ID)
	assert.Equal(t, banner.Type, got.Type)
	assert.Equal(t, banner.FileReference, got.FileReference)
}

func TestRedisBannerRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisBannerRepository_ListOrdersByDisplayOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Banner{ID: "late", Type: domain.BannerTypeImage, FileReference: "media/late.jpg", DisplayOrder: 9}))
	require.NoError(t, repo.Save(ctx, &domain.Banner{ID: "first", Type: domain.BannerTypeImage, FileReference: "media/first.jpg", DisplayOrder: 1}))
	require.NoError(t, repo.Save(ctx, &domain.Banner{ID: "mid", Type: domain.BannerTypeVideo, FileReference: "media/mid.mp4", DisplayOrder: 5}))

	banners, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 3)
	assert.Equal(t, "first", banners[0].ID)
	assert.Equal(t, "mid", banners[1].ID)
	assert.Equal(t, "late", banners[2].ID)
}

func TestRedisBannerRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	banners, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, banners)
}

func TestRedisBannerRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Banner{ID: "b1", Type: domain.BannerTypeImage, FileReference: "media/b1.jpg"}))
	require.NoError(t, repo.Delete(ctx, "b1"))

	got, err := repo.Get(ctx, "b1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
