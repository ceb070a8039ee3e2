package ports

import (
	"context"

	"canteen-api/internal/features/media/domain"
)

// MediaService defines the primary port for banner and carousel operations.
type MediaService interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	UpsertBanner(ctx context.Context, id string, bannerType domain.BannerType, fileReference, mimeType string, displayOrder int) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	Snapshot() domain.CarouselSnapshot
	ApplyGesture(phase domain.GesturePhase, position float64) (domain.CarouselSnapshot, error)
	CompleteTransition() domain.CarouselSnapshot
	ReportLoadError(bannerID string)
}

// BannerRepository defines the secondary port for banner storage.
type BannerRepository interface {
	Save(ctx context.Context, banner *domain.Banner) error
	Get(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context) ([]domain.Banner, error)
	Delete(ctx context.Context, id string) error
}
