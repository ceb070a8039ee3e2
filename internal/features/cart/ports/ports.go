package ports

import (
	"context"

	"canteen-api/internal/features/cart/domain"
)

// CartService defines the primary port for cart operations.
type CartService interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, customerID string) error
}

// CartRepository defines the secondary port for cart storage.
type CartRepository interface {
	Save(ctx context.Context, cart *domain.Cart) error
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	Delete(ctx context.Context, customerID string) error
}

// PricedItem is the slice of a menu item the cart needs.
type PricedItem struct {
	ID         string
	Name       string
	PriceCents int64
	Available  bool
}

// MenuProvider resolves menu items for pricing. Returns nil, nil when the
// item does not exist.
type MenuProvider interface {
	PricedItem(ctx context.Context, id string) (*PricedItem, error)
}
