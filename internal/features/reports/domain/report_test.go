package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "canteen-api/internal/features/orders/domain"
)

var reportDay = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func orderAt(hour int, status orderdomain.OrderStatus, items ...orderdomain.OrderItem) orderdomain.Order {
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPriceCents * int64(item.Quantity)
	}
	return orderdomain.Order{
		ID:            fmt.Sprintf("o-%d", hour),
		Items:         items,
		SubtotalCents: subtotal,
		TotalCents:    subtotal,
		Status:        status,
		CreatedAt:     reportDay.Add(time.Duration(hour) * time.Hour),
	}
}

func TestBuildDailyReport(t *testing.T) {
	orders := []orderdomain.Order{
		orderAt(9, orderdomain.StatusCompleted,
			orderdomain.OrderItem{ItemID: "m1", Name: "Veg Thali", UnitPriceCents: 8500, Quantity: 2}),
		orderAt(12, orderdomain.StatusPlaced,
			orderdomain.OrderItem{ItemID: "m2", Name: "Masala Chai", UnitPriceCents: 2000, Quantity: 3}),
	}
	orders[1].DiscountCents = 600
	orders[1].TotalCents -= 600

	report := BuildDailyReport(reportDay, orders)

	assert.Equal(t, "2026-03-01", report.Date)
	assert.Equal(t, 2, report.OrderCount)
	assert.EqualValues(t, 23000, report.GrossCents)
	assert.EqualValues(t, 600, report.DiscountCents)
	assert.EqualValues(t, 22400, report.NetCents)
}

func TestBuildDailyReport_ExcludesCancelledAndOtherDays(t *testing.T) {
	orders := []orderdomain.Order{
		orderAt(9, orderdomain.StatusCompleted,
			orderdomain.OrderItem{ItemID: "m1", Name: "Veg Thali", UnitPriceCents: 8500, Quantity: 1}),
		orderAt(10, orderdomain.StatusCancelled,
			orderdomain.OrderItem{ItemID: "m1", Name: "Veg Thali", UnitPriceCents: 8500, Quantity: 4}),
		// Midnight of the next day belongs to the next day's report.
		orderAt(24, orderdomain.StatusCompleted,
			orderdomain.OrderItem{ItemID: "m1", Name: "Veg Thali", UnitPriceCents: 8500, Quantity: 1}),
	}

	report := BuildDailyReport(reportDay, orders)

	assert.Equal(t, 1, report.OrderCount)
	assert.EqualValues(t, 8500, report.GrossCents)
}

func TestBuildDailyReport_TopItems(t *testing.T) {
	var items []orderdomain.OrderItem
	for i := 0; i < 7; i++ {
		items = append(items, orderdomain.OrderItem{
			ItemID:         fmt.Sprintf("m%d", i),
			Name:           fmt.Sprintf("Item %d", i),
			UnitPriceCents: 1000,
			Quantity:       i + 1,
		})
	}

	report := BuildDailyReport(reportDay, []orderdomain.Order{
		orderAt(9, orderdomain.StatusCompleted, items...),
	})

	require.Len(t, report.TopItems, 5)
	// Highest quantities first.
	assert.Equal(t, "m6", report.TopItems[0].ItemID)
	assert.Equal(t, 7, report.TopItems[0].Quantity)
	assert.Equal(t, "m2", report.TopItems[4].ItemID)
}

func TestBuildDailyReport_Empty(t *testing.T) {
	report := BuildDailyReport(reportDay, nil)

	assert.Equal(t, 0, report.OrderCount)
	assert.NotNil(t, report.TopItems)
	assert.Empty(t, report.TopItems)
}
