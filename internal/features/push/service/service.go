package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"canteen-api/internal/features/push/domain"
	"canteen-api/internal/features/push/ports"
)

// PushServiceImpl implements ports.PushService. Subscribing twice with the
// same endpoint overwrites the stored keys.
type PushServiceImpl struct {
	repo  ports.SubscriptionRepository
	clock clockwork.Clock
}

// NewPushService creates a new PushServiceImpl.
func NewPushService(repo ports.SubscriptionRepository, clock clockwork.Clock) *PushServiceImpl {
	return &PushServiceImpl{
		repo:  repo,
		clock: clock,
	}
}

// Subscribe validates and stores a subscription.
func (s *PushServiceImpl) Subscribe(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	sub.CreatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, &sub); err != nil {
		return nil, fmt.Errorf("service: failed to save subscription: %w", err)
	}
	return &sub, nil
}

// Unsubscribe removes the subscription for the endpoint. Removing an unknown
// endpoint is not an error.
func (s *PushServiceImpl) Unsubscribe(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return domain.ErrMissingEndpoint
	}
	if err := s.repo.Delete(ctx, endpoint); err != nil {
		return fmt.Errorf("service: failed to delete subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns all stored subscriptions.
func (s *PushServiceImpl) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list subscriptions: %w", err)
	}
	return subs, nil
}
