package adapters

import (
	"context"
	"testing"
	"time"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisOrderRepository {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisOrderRepository(adapter)
}

func sampleOrder(id string) *domain.Order {
	return &domain.Order{
		ID:         id,
		CustomerID: "cust-1",
		Items: []domain.OrderItem{
			{ItemID: "m1", Name: "Veg Thali", UnitPriceCents: 8500, Quantity: 2},
		},
		SubtotalCents:    17000,
		TotalCents:       17000,
		Status:           domain.StatusPlaced,
		PaymentReference: "pay-123",
		CreatedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisOrderRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleOrder("o1")))

	got, err := repo.Get(ctx, "o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "cust-1", got.CustomerID)
	assert.Equal(t, domain.StatusPlaced, got.Status)
	assert.Equal(t, "pay-123", got.PaymentReference)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestRedisOrderRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisOrderRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleOrder("o1")))
	require.NoError(t, repo.Save(ctx, sampleOrder("o2")))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
