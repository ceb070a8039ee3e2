package handler

import (
	"errors"
	"net/http"
	"time"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/coupons/domain"
	"canteen-api/internal/features/coupons/ports"
	"canteen-api/internal/features/coupons/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CouponHandler handles HTTP requests for coupons.
type CouponHandler struct {
	service ports.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(s ports.CouponService) *CouponHandler {
	return &CouponHandler{
		service: s,
	}
}

// UpsertCouponRequest represents the request body for creating or updating a coupon.
type UpsertCouponRequest struct {
	Code          string    `json:"code"`
	Kind          string    `json:"kind"`
	Value         int64     `json:"value"`
	MinOrderCents int64     `json:"min_order_cents"`
	ExpiresAt     time.Time `json:"expires_at"`
	Active        bool      `json:"active"`
}

// ValidateCouponRequest represents the request body for checking a coupon
// against a subtotal.
type ValidateCouponRequest struct {
	Code          string `json:"code"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// ValidateCouponResponse reports the discount a valid coupon grants.
type ValidateCouponResponse struct {
	Code          string `json:"code"`
	DiscountCents int64  `json:"discount_cents"`
}

// ValidateCoupon handles POST /coupons/validate.
// @Summary Validate a coupon against a subtotal
// @Tags Coupons
// @Accept json
// @Produce json
// @Param request body ValidateCouponRequest true "Code and subtotal"
// @Success 200 {object} ValidateCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *fiber.Ctx) error {
	var req ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	discount, err := h.service.Discount(c.Context(), req.Code, req.SubtotalCents)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Coupon not found",
			})
		case errors.Is(err, service.ErrCouponExpired),
			errors.Is(err, service.ErrCouponInactive),
			errors.Is(err, service.ErrMinOrderNotMet):
			return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to validate coupon", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(ValidateCouponResponse{
		Code:          req.Code,
		DiscountCents: discount,
	})
}

// ListCoupons handles GET /admin/coupons.
// @Summary List all coupons
// @Tags Coupons
// @Produce json
// @Success 200 {array} domain.Coupon
// @Failure 500 {object} map[string]string
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.ListCoupons(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list coupons", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(coupons)
}

// UpsertCoupon handles POST /admin/coupons.
// @Summary Create or update a coupon
// @Tags Coupons
// @Accept json
// @Produce json
// @Param coupon body UpsertCouponRequest true "Coupon details"
// @Success 200 {object} domain.Coupon
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/coupons [post]
func (h *CouponHandler) UpsertCoupon(c *fiber.Ctx) error {
	var req UpsertCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	coupon, err := h.service.UpsertCoupon(c.Context(), domain.Coupon{
		Code:          req.Code,
		Kind:          domain.CouponKind(req.Kind),
		Value:         req.Value,
		MinOrderCents: req.MinOrderCents,
		ExpiresAt:     req.ExpiresAt,
		Active:        req.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingCode) || errors.Is(err, domain.ErrInvalidKind) ||
			errors.Is(err, domain.ErrInvalidValue) || errors.Is(err, domain.ErrPercentTooLarge) ||
			errors.Is(err, domain.ErrInvalidMinOrder) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to upsert coupon", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(coupon)
}

// DeleteCoupon handles DELETE /admin/coupons/:code.
// @Summary Delete a coupon
// @Tags Coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/coupons/{code} [delete]
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	if err := h.service.DeleteCoupon(c.Context(), c.Params("code")); err != nil {
		logger.Get().Error("Failed to delete coupon", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Coupon deleted successfully",
	})
}
