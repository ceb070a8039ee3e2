package adapters

import (
	"context"
	"fmt"

	cartports "canteen-api/internal/features/cart/ports"
	"canteen-api/internal/features/orders/domain"
	orderports "canteen-api/internal/features/orders/ports"
)

// CartProviderAdapter exposes the cart feature to the checkout without
// coupling orders to cart domain types.
type CartProviderAdapter struct {
	cart cartports.CartService
}

// NewCartProviderAdapter creates a new CartProviderAdapter.
func NewCartProviderAdapter(cart cartports.CartService) *CartProviderAdapter {
	return &CartProviderAdapter{cart: cart}
}

// Cart returns the customer's cart in checkout terms.
func (a *CartProviderAdapter) Cart(ctx context.Context, customerID string) (*orderports.CheckoutCart, error) {
	cart, err := a.cart.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			ItemID:         line.ItemID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		})
	}

	return &orderports.CheckoutCart{
		Items:         items,
		SubtotalCents: cart.Subtotal(),
	}, nil
}

// Clear drops the customer's cart.
func (a *CartProviderAdapter) Clear(ctx context.Context, customerID string) error {
	return a.cart.Clear(ctx, customerID)
}
