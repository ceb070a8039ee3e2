package handler

import (
	"net/http"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/media/domain"
	"canteen-api/internal/features/media/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MediaHandler handles HTTP requests for banners and the carousel.
type MediaHandler struct {
	service ports.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{
		service: service,
	}
}

// UpsertBannerRequest represents the request body for creating or updating a banner.
type UpsertBannerRequest struct {
	ID            string            `json:"id"`
	Type          domain.BannerType `json:"type"`
	FileReference string            `json:"file_reference"`
	MimeType      string            `json:"mime_type"`
	DisplayOrder  int               `json:"display_order"`
}

// GestureRequest represents a pointer event forwarded by the PWA.
type GestureRequest struct {
	Phase    domain.GesturePhase `json:"phase"`
	Position float64             `json:"position"`
}

// ListBanners handles GET /media/banners.
// @Summary List carousel banners
// @Description Returns the ordered banner collection for the storefront carousel.
// @Tags Media
// @Produce json
// @Success 200 {array} domain.Banner
// @Failure 500 {object} map[string]string
// @Router /media/banners [get]
func (h *MediaHandler) ListBanners(c *fiber.Ctx) error {
	banners, err := h.service.ListBanners(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list banners", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(banners)
}

// UpsertBanner handles POST /admin/banners.
// @Summary Create or update a banner
// @Description Stores a banner descriptor; an empty id creates a new banner.
// @Tags Media
// @Accept json
// @Produce json
// @Param banner body UpsertBannerRequest true "Banner details"
// @Success 200 {object} domain.Banner
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/banners [post]
func (h *MediaHandler) UpsertBanner(c *fiber.Ctx) error {
	var req UpsertBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	banner, err := h.service.UpsertBanner(c.Context(), req.ID, req.Type, req.FileReference, req.MimeType, req.DisplayOrder)
	if err != nil {
		if err == domain.ErrInvalidBannerType || err == domain.ErrMissingFileReference {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to upsert banner", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(banner)
}

// DeleteBanner handles DELETE /admin/banners/:id.
// @Summary Delete a banner
// @Tags Media
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/banners/{id} [delete]
func (h *MediaHandler) DeleteBanner(c *fiber.Ctx) error {
	if err := h.service.DeleteBanner(c.Context(), c.Params("id")); err != nil {
		logger.Get().Error("Failed to delete banner", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Banner deleted successfully",
	})
}

// GetCarousel handles GET /media/carousel.
// @Summary Get the carousel state
// @Description Returns the current carousel index, interaction state and banner sequence.
// @Tags Media
// @Produce json
// @Success 200 {object} domain.CarouselSnapshot
// @Router /media/carousel [get]
func (h *MediaHandler) GetCarousel(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Snapshot())
}

// ApplyGesture handles POST /media/carousel/gesture.
// @Summary Forward a pointer gesture event
// @Description Applies a down/move/up pointer event to the carousel state machine.
// @Tags Media
// @Accept json
// @Produce json
// @Param gesture body GestureRequest true "Gesture event"
// @Success 200 {object} domain.CarouselSnapshot
// @Failure 400 {object} map[string]string
// @Router /media/carousel/gesture [post]
func (h *MediaHandler) ApplyGesture(c *fiber.Ctx) error {
	var req GestureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	snapshot, err := h.service.ApplyGesture(req.Phase, req.Position)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid gesture phase. Must be down, move, or up",
		})
	}

	return c.Status(http.StatusOK).JSON(snapshot)
}

// CompleteTransition handles POST /media/carousel/complete.
// @Summary Signal animation end
// @Description Marks the slide-change animation as finished so auto-advance resumes.
// @Tags Media
// @Produce json
// @Success 200 {object} domain.CarouselSnapshot
// @Router /media/carousel/complete [post]
func (h *MediaHandler) CompleteTransition(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.CompleteTransition())
}

// ReportLoadError handles POST /media/banners/:id/load-error.
// @Summary Report a failed banner asset
// @Description Records that a banner image or video failed to load on the client.
// @Tags Media
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} map[string]string
// @Router /media/banners/{id}/load-error [post]
func (h *MediaHandler) ReportLoadError(c *fiber.Ctx) error {
	h.service.ReportLoadError(c.Params("id"))
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Load error recorded",
	})
}
