package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/media/domain"
	"canteen-api/internal/features/media/ports"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// MediaServiceImpl implements ports.MediaService. It owns the storefront
// carousel instance and drives its auto-advance timer; handlers forward
// gesture events into it.
type MediaServiceImpl struct {
	repo     ports.BannerRepository
	clock    clockwork.Clock
	interval time.Duration
	cfg      domain.CarouselConfig
	log      *zap.Logger

	mu       sync.Mutex
	carousel *domain.Carousel
	timer    clockwork.Timer
}

// NewMediaService creates a new MediaServiceImpl. The carousel is empty until
// Start (or the first banner mutation) loads banners from the repository.
func NewMediaService(repo ports.BannerRepository, clock clockwork.Clock, interval time.Duration, cfg domain.CarouselConfig) *MediaServiceImpl {
	return &MediaServiceImpl{
		repo:     repo,
		clock:    clock,
		interval: interval,
		cfg:      cfg,
		log:      logger.Named("media"),
		carousel: domain.NewCarousel(nil, cfg),
	}
}

// Start loads the banner collection and arms the auto-advance timer.
func (s *MediaServiceImpl) Start(ctx context.Context) error {
	return s.reload(ctx)
}

// Stop cancels the auto-advance timer.
func (s *MediaServiceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

// ListBanners returns the stored banner collection in display order.
func (s *MediaServiceImpl) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list banners: %w", err)
	}
	return banners, nil
}

// UpsertBanner validates and stores a banner, then rebuilds the carousel.
// An empty id creates a new banner.
func (s *MediaServiceImpl) UpsertBanner(ctx context.Context, id string, bannerType domain.BannerType, fileReference, mimeType string, displayOrder int) (*domain.Banner, error) {
	if id == "" {
		id = uuid.NewString()
	}

	banner, err := domain.NewBanner(id, bannerType, fileReference, mimeType, displayOrder)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, banner); err != nil {
		return nil, fmt.Errorf("service: failed to save banner: %w", err)
	}

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	return banner, nil
}

// DeleteBanner removes a banner and rebuilds the carousel.
func (s *MediaServiceImpl) DeleteBanner(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete banner: %w", err)
	}
	return s.reload(ctx)
}

// Snapshot returns the current carousel state.
func (s *MediaServiceImpl) Snapshot() domain.CarouselSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.Snapshot()
}

// ApplyGesture forwards a pointer event into the carousel state machine.
// A pointer-down cancels the auto-advance timer; a below-threshold release
// re-arms it.
func (s *MediaServiceImpl) ApplyGesture(phase domain.GesturePhase, position float64) (domain.CarouselSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch phase {
	case domain.GestureDown:
		if s.carousel.PointerDown(position) {
			s.stopTimerLocked()
		}
	case domain.GestureMove:
		s.carousel.PointerMove(position)
	case domain.GestureUp:
		committed := s.carousel.PointerUp()
		if committed {
			s.log.Debug("Swipe committed", zap.Int("index", s.carousel.Index()))
		}
		s.armTimerLocked()
	default:
		return s.carousel.Snapshot(), domain.ErrInvalidGesturePhase
	}

	return s.carousel.Snapshot(), nil
}

// CompleteTransition marks the slide animation as finished and re-arms the
// auto-advance timer.
func (s *MediaServiceImpl) CompleteTransition() domain.CarouselSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.carousel.CompleteTransition() {
		s.armTimerLocked()
	}
	return s.carousel.Snapshot()
}

// ReportLoadError records a failed banner asset so clients render a
// placeholder for it.
func (s *MediaServiceImpl) ReportLoadError(bannerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carousel.MarkLoadError(bannerID)
	s.log.Warn("Banner asset failed to load", zap.String("banner_id", bannerID))
}

// reload rebuilds the carousel from the repository.
func (s *MediaServiceImpl) reload(ctx context.Context) error {
	banners, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load banners: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carousel = domain.NewCarousel(banners, s.cfg)
	s.armTimerLocked()
	return nil
}

// armTimerLocked schedules the next auto-advance. Must hold s.mu.
func (s *MediaServiceImpl) armTimerLocked() {
	s.stopTimerLocked()
	if !s.carousel.ShouldAutoAdvance() {
		return
	}
	s.timer = s.clock.AfterFunc(s.interval, s.onAutoAdvance)
}

// stopTimerLocked cancels any pending auto-advance. Must hold s.mu.
func (s *MediaServiceImpl) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// onAutoAdvance fires when the auto-advance period elapses.
func (s *MediaServiceImpl) onAutoAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.carousel.Advance() {
		// The timer is re-armed when the transition completes.
		s.log.Debug("Auto-advanced", zap.Int("index", s.carousel.Index()))
		return
	}
	// The tick lost a race against a gesture; try again later if possible.
	s.armTimerLocked()
}
