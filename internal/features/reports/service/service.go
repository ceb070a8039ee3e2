package service

import (
	"context"
	"fmt"
	"time"

	"canteen-api/internal/features/reports/domain"
	"canteen-api/internal/features/reports/ports"
)

// ReportServiceImpl implements ports.ReportService by aggregating orders on
// demand. Order volume for a single canteen stays small enough that no
// precomputed rollup is needed.
type ReportServiceImpl struct {
	orders ports.OrderSource
}

// NewReportService creates a new ReportServiceImpl.
func NewReportService(orders ports.OrderSource) *ReportServiceImpl {
	return &ReportServiceImpl{orders: orders}
}

// DailyReport builds the sales summary for the given calendar day.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, date time.Time) (*domain.DailySalesReport, error) {
	orders, err := s.orders.ListAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load orders for report: %w", err)
	}

	report := domain.BuildDailyReport(date, orders)
	return &report, nil
}
