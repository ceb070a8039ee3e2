package handler

import (
	"errors"
	"net/http"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/menu/domain"
	"canteen-api/internal/features/menu/ports"
	"canteen-api/internal/features/menu/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service ports.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(s ports.MenuService) *MenuHandler {
	return &MenuHandler{
		service: s,
	}
}

// UpsertItemRequest represents the request body for creating or updating a menu item.
type UpsertItemRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url"`
}

// AvailabilityRequest represents the request body for toggling item availability.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// ListItems handles GET /menu.
// @Summary List menu items
// @Description Returns menu items, optionally filtered by category.
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} domain.MenuItem
// @Failure 500 {object} map[string]string
// @Router /menu [get]
func (h *MenuHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), c.Query("category"))
	if err != nil {
		logger.Get().Error("Failed to list menu items", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(items)
}

// GetItem handles GET /menu/:id.
// @Summary Get a menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.MenuItem
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /menu/{id} [get]
func (h *MenuHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Menu item not found",
			})
		}
		logger.Get().Error("Failed to get menu item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(item)
}

// UpsertItem handles POST /admin/menu.
// @Summary Create or update a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param item body UpsertItemRequest true "Menu item details"
// @Success 200 {object} domain.MenuItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/menu [post]
func (h *MenuHandler) UpsertItem(c *fiber.Ctx) error {
	var req UpsertItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.service.UpsertItem(c.Context(), req.ID, req.Name, req.Description, req.Category, req.PriceCents, req.ImageURL)
	if err != nil {
		if errors.Is(err, domain.ErrMissingName) || errors.Is(err, domain.ErrMissingCategory) || errors.Is(err, domain.ErrInvalidPrice) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to upsert menu item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(item)
}

// DeleteItem handles DELETE /admin/menu/:id.
// @Summary Delete a menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/menu/{id} [delete]
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Context(), c.Params("id")); err != nil {
		logger.Get().Error("Failed to delete menu item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Menu item deleted successfully",
	})
}

// SetAvailability handles PATCH /admin/menu/:id/availability.
// @Summary Toggle menu item availability
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param availability body AvailabilityRequest true "Availability flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/menu/{id}/availability [patch]
func (h *MenuHandler) SetAvailability(c *fiber.Ctx) error {
	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.SetAvailability(c.Context(), c.Params("id"), req.Available); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Menu item not found",
			})
		}
		logger.Get().Error("Failed to set menu item availability", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Availability updated",
	})
}
