package handler

import (
	"net/http"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/maintenance/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaintenanceHandler handles HTTP requests for the maintenance switch.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(s ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: s,
	}
}

// EnableRequest represents the request body for turning maintenance mode on.
type EnableRequest struct {
	Message string `json:"message"`
}

// Middleware rejects customer traffic with 503 while maintenance mode is on.
// When the status cannot be read the request passes through; an unreachable
// store should not take the whole storefront down twice.
func (h *MaintenanceHandler) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := h.service.Status(c.Context())
		if err != nil {
			logger.Get().Warn("Failed to read maintenance status, allowing request", zap.Error(err))
			return c.Next()
		}
		if status.Enabled {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"error": status.Message,
			})
		}
		return c.Next()
	}
}

// GetStatus handles GET /maintenance.
// @Summary Current maintenance status
// @Tags Maintenance
// @Produce json
// @Success 200 {object} domain.Status
// @Failure 500 {object} map[string]string
// @Router /maintenance [get]
func (h *MaintenanceHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.service.Status(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get maintenance status", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(status)
}

// Enable handles POST /admin/maintenance.
// @Summary Turn maintenance mode on
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body EnableRequest false "Message shown to customers"
// @Success 200 {object} domain.Status
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/maintenance [post]
func (h *MaintenanceHandler) Enable(c *fiber.Ctx) error {
	var req EnableRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	status, err := h.service.Enable(c.Context(), req.Message)
	if err != nil {
		logger.Get().Error("Failed to enable maintenance mode", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(status)
}

// Disable handles DELETE /admin/maintenance.
// @Summary Turn maintenance mode off
// @Tags Maintenance
// @Produce json
// @Success 200 {object} domain.Status
// @Failure 500 {object} map[string]string
// @Router /admin/maintenance [delete]
func (h *MaintenanceHandler) Disable(c *fiber.Ctx) error {
	status, err := h.service.Disable(c.Context())
	if err != nil {
		logger.Get().Error("Failed to disable maintenance mode", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(status)
}
