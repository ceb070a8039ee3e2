package handler

import (
	"errors"
	"net/http"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/push/domain"
	"canteen-api/internal/features/push/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PushHandler handles HTTP requests for push subscriptions.
type PushHandler struct {
	service ports.PushService
}

// NewPushHandler creates a new PushHandler.
func NewPushHandler(s ports.PushService) *PushHandler {
	return &PushHandler{
		service: s,
	}
}

// SubscribeRequest mirrors the browser's PushSubscription JSON shape.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// UnsubscribeRequest carries the endpoint to drop.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// Subscribe handles POST /push/subscriptions.
// @Summary Register a push subscription
// @Tags Push
// @Accept json
// @Produce json
// @Param subscription body SubscribeRequest true "Browser push subscription"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /push/subscriptions [post]
func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := h.service.Subscribe(c.Context(), domain.Subscription{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingEndpoint) || errors.Is(err, domain.ErrMissingKeys) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to save push subscription", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(sub)
}

// Unsubscribe handles DELETE /push/subscriptions.
// @Summary Remove a push subscription
// @Tags Push
// @Accept json
// @Produce json
// @Param request body UnsubscribeRequest true "Endpoint to remove"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /push/subscriptions [delete]
func (h *PushHandler) Unsubscribe(c *fiber.Ctx) error {
	var req UnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.Unsubscribe(c.Context(), req.Endpoint); err != nil {
		if errors.Is(err, domain.ErrMissingEndpoint) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to delete push subscription", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Subscription removed",
	})
}

// ListSubscriptions handles GET /admin/push/subscriptions.
// @Summary List all push subscriptions
// @Tags Push
// @Produce json
// @Success 200 {array} domain.Subscription
// @Failure 500 {object} map[string]string
// @Router /admin/push/subscriptions [get]
func (h *PushHandler) ListSubscriptions(c *fiber.Ctx) error {
	subs, err := h.service.ListSubscriptions(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list push subscriptions", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(subs)
}
