package adapters

import (
	"context"
	"testing"
	"time"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/coupons/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisCouponRepository {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisCouponRepository(adapter)
}

func TestRedisCouponRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	coupon := &domain.Coupon{
		Code:          "LUNCH10",
		Kind:          domain.KindPercent,
		Value:         10,
		MinOrderCents: 1000,
		ExpiresAt:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
	require.NoError(t, repo.Save(ctx, coupon))

	got, err := repo.Get(ctx, "LUNCH10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.KindPercent, got.Kind)
	assert.EqualValues(t, 10, got.Value)
	assert.True(t, got.ExpiresAt.Equal(coupon.ExpiresAt))
}

func TestRedisCouponRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background(), "MISSING")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCouponRepository_ListSorted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Coupon{Code: "ZETA", Kind: domain.KindFlat, Value: 100, Active: true}))
	require.NoError(t, repo.Save(ctx, &domain.Coupon{Code: "ALPHA", Kind: domain.KindFlat, Value: 200, Active: true}))

	coupons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "ALPHA", coupons[0].Code)
	assert.Equal(t, "ZETA", coupons[1].Code)
}

func TestRedisCouponRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Coupon{Code: "ONCE", Kind: domain.KindFlat, Value: 100, Active: true}))
	require.NoError(t, repo.Delete(ctx, "ONCE"))

	got, err := repo.Get(ctx, "ONCE")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
