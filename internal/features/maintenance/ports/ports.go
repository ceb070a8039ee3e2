package ports

import (
	"context"

	"canteen-api/internal/features/maintenance/domain"
)

// MaintenanceService defines the primary port for the maintenance switch.
type MaintenanceService interface {
	Enable(ctx context.Context, message string) (*domain.Status, error)
	Disable(ctx context.Context) (*domain.Status, error)
	Status(ctx context.Context) (*domain.Status, error)
}

// StatusRepository defines the secondary port for maintenance status storage.
type StatusRepository interface {
	Save(ctx context.Context, status *domain.Status) error
	// Get returns nil without error when no status was ever stored.
	Get(ctx context.Context) (*domain.Status, error)
}
