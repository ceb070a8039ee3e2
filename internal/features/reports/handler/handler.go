package handler

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/reports/ports"
)

// ReportHandler handles HTTP requests for sales reports.
type ReportHandler struct {
	service ports.ReportService
	clock   clockwork.Clock
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(s ports.ReportService, clock clockwork.Clock) *ReportHandler {
	return &ReportHandler{
		service: s,
		clock:   clock,
	}
}

// DailyReport handles GET /admin/reports/daily.
// @Summary Daily sales report
// @Description Aggregates orders for one calendar day. Defaults to today.
// @Tags Reports
// @Produce json
// @Param date query string false "Day in YYYY-MM-DD format"
// @Success 200 {object} domain.DailySalesReport
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/reports/daily [get]
func (h *ReportHandler) DailyReport(c *fiber.Ctx) error {
	date := h.clock.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		date = parsed
	}

	report, err := h.service.DailyReport(c.Context(), date)
	if err != nil {
		logger.Get().Error("Failed to build daily report", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(report)
}
