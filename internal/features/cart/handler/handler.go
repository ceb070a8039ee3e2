package handler

import (
	"errors"
	"net/http"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/cart/domain"
	"canteen-api/internal/features/cart/ports"
	"canteen-api/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerIDHeader identifies the customer owning the cart. The PWA client
// generates and persists it locally.
const CustomerIDHeader = "X-Customer-ID"

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s ports.CartService) *CartHandler {
	return &CartHandler{
		service: s,
	}
}

// AddItemRequest represents the request body for adding an item to the cart.
type AddItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func customerID(c *fiber.Ctx) (string, bool) {
	id := c.Get(CustomerIDHeader)
	return id, id != ""
}

func missingCustomerID(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": "Missing " + CustomerIDHeader + " header",
	})
}

// GetCart handles GET /cart.
// @Summary Get the customer's cart
// @Tags Cart
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return missingCustomerID(c)
	}

	cart, err := h.service.Get(c.Context(), id)
	if err != nil {
		logger.Get().Error("Failed to get cart", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cart)
}

// AddItem handles POST /cart/items.
// @Summary Add an item to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Param item body AddItemRequest true "Item and quantity"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return missingCustomerID(c)
	}

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cart, err := h.service.AddItem(c.Context(), id, req.ItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrItemNotOnMenu):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Menu item not found",
			})
		case errors.Is(err, service.ErrItemUnavailable):
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Menu item currently unavailable",
			})
		}
		logger.Get().Error("Failed to add cart item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cart)
}

// UpdateQuantity handles PUT /cart/items/:itemID.
// @Summary Set the quantity of a cart line
// @Description A quantity of zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Param itemID path string true "Menu item ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart/items/{itemID} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return missingCustomerID(c)
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cart, err := h.service.UpdateQuantity(c.Context(), id, c.Params("itemID"), req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrItemNotInCart) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Item not in cart",
			})
		}
		logger.Get().Error("Failed to update cart line", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cart)
}

// RemoveItem handles DELETE /cart/items/:itemID.
// @Summary Remove a line from the cart
// @Tags Cart
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Param itemID path string true "Menu item ID"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart/items/{itemID} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return missingCustomerID(c)
	}

	cart, err := h.service.RemoveItem(c.Context(), id, c.Params("itemID"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotInCart) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Item not in cart",
			})
		}
		logger.Get().Error("Failed to remove cart line", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cart)
}

// ClearCart handles DELETE /cart.
// @Summary Clear the customer's cart
// @Tags Cart
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return missingCustomerID(c)
	}

	if err := h.service.Clear(c.Context(), id); err != nil {
		logger.Get().Error("Failed to clear cart", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
