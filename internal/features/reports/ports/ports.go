package ports

import (
	"context"
	"time"

	orderdomain "canteen-api/internal/features/orders/domain"
	"canteen-api/internal/features/reports/domain"
)

// ReportService defines the primary port for sales reporting.
type ReportService interface {
	// DailyReport builds the sales summary for the given calendar day.
	DailyReport(ctx context.Context, date time.Time) (*domain.DailySalesReport, error)
}

// OrderSource exposes the orders feature to reporting.
type OrderSource interface {
	ListAllOrders(ctx context.Context) ([]orderdomain.Order, error)
}
