package handler

import (
	"errors"
	"net/http"

	"canteen-api/internal/core/logger"
	couponservice "canteen-api/internal/features/coupons/service"
	"canteen-api/internal/features/orders/domain"
	"canteen-api/internal/features/orders/ports"
	"canteen-api/internal/features/orders/service"
	paymentdomain "canteen-api/internal/features/payments/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerIDHeader identifies the customer placing or listing orders.
const CustomerIDHeader = "X-Customer-ID"

// OrderHandler handles HTTP requests for orders and checkout.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// CheckoutRequest represents the request body for placing an order.
type CheckoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

// UpdateStatusRequest represents the request body for moving an order
// through the kitchen workflow.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func customerID(c *fiber.Ctx) (string, bool) {
	id := c.Get(CustomerIDHeader)
	return id, id != ""
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// Checkout handles POST /checkout.
// @Summary Place an order from the customer's cart
// @Description Charges the payment gateway and empties the cart on success.
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Param request body CheckoutRequest true "Optional coupon code"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Missing " + CustomerIDHeader + " header",
			RayID:   rayID(c),
		})
	}

	// The body is optional. A bare checkout has no coupon.
	var req CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	order, err := h.service.Checkout(c.Context(), id, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Cart is empty",
				RayID:   rayID(c),
			})
		case errors.Is(err, couponservice.ErrCouponNotFound),
			errors.Is(err, couponservice.ErrCouponExpired),
			errors.Is(err, couponservice.ErrCouponInactive),
			errors.Is(err, couponservice.ErrMinOrderNotMet):
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		case errors.Is(err, paymentdomain.ErrAuth), errors.Is(err, paymentdomain.ErrGateway):
			logger.Get().Error("Payment gateway rejected checkout",
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Message: "Payment could not be processed",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Checkout failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// ListOrders handles GET /orders.
// @Summary List the customer's orders
// @Tags Orders
// @Produce json
// @Param X-Customer-ID header string true "Customer ID"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Missing " + CustomerIDHeader + " header",
			RayID:   rayID(c),
		})
	}

	orders, err := h.service.ListOrders(c.Context(), id)
	if err != nil {
		logger.Get().Error("Failed to list orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to get order",
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ListAllOrders handles GET /admin/orders.
// @Summary List all orders
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAllOrders(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list all orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// UpdateStatus handles PATCH /admin/orders/:id/status.
// @Summary Move an order through the kitchen workflow
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.UpdateStatus(c.Context(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrOrderAlreadyFinished):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to update order status",
			zap.String("order_id", c.Params("id")),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
