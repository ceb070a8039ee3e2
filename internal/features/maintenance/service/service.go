package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"canteen-api/internal/features/maintenance/domain"
	"canteen-api/internal/features/maintenance/ports"
)

// MaintenanceServiceImpl implements ports.MaintenanceService.
type MaintenanceServiceImpl struct {
	repo  ports.StatusRepository
	clock clockwork.Clock
}

// NewMaintenanceService creates a new MaintenanceServiceImpl.
func NewMaintenanceService(repo ports.StatusRepository, clock clockwork.Clock) *MaintenanceServiceImpl {
	return &MaintenanceServiceImpl{
		repo:  repo,
		clock: clock,
	}
}

// Enable turns maintenance mode on with the given message.
func (s *MaintenanceServiceImpl) Enable(ctx context.Context, message string) (*domain.Status, error) {
	if message == "" {
		message = domain.DefaultMessage
	}
	status := &domain.Status{
		Enabled:   true,
		Message:   message,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, status); err != nil {
		return nil, fmt.Errorf("service: failed to enable maintenance mode: %w", err)
	}
	return status, nil
}

// Disable turns maintenance mode off.
func (s *MaintenanceServiceImpl) Disable(ctx context.Context) (*domain.Status, error) {
	status := &domain.Status{
		Enabled:   false,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, status); err != nil {
		return nil, fmt.Errorf("service: failed to disable maintenance mode: %w", err)
	}
	return status, nil
}

// Status returns the current maintenance switch. A store that never held a
// status means maintenance is off.
func (s *MaintenanceServiceImpl) Status(ctx context.Context) (*domain.Status, error) {
	status, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read maintenance status: %w", err)
	}
	if status == nil {
		return &domain.Status{Enabled: false}, nil
	}
	return status, nil
}
