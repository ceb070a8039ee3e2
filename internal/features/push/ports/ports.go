package ports

import (
	"context"

	"canteen-api/internal/features/push/domain"
)

// PushService defines the primary port for push subscription management.
type PushService interface {
	Subscribe(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, endpoint string) error
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
}

// SubscriptionRepository defines the secondary port for subscription storage.
type SubscriptionRepository interface {
	Save(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, endpoint string) error
	List(ctx context.Context) ([]domain.Subscription, error)
}
