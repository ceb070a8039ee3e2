package ports

import (
	"context"

	"canteen-api/internal/features/menu/domain"
)

// MenuService defines the primary port for menu operations.
type MenuService interface {
	// ListItems returns menu items, optionally filtered by category.
	ListItems(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpsertItem(ctx context.Context, id, name, description, category string, priceCents int64, imageURL string) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

// MenuRepository defines the secondary port for menu storage.
type MenuRepository interface {
	Save(ctx context.Context, item *domain.MenuItem) error
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
