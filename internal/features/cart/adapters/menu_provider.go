package adapters

import (
	"context"
	"errors"
	"fmt"

	cartports "canteen-api/internal/features/cart/ports"
	menuports "canteen-api/internal/features/menu/ports"
	menuservice "canteen-api/internal/features/menu/service"
)

// MenuProviderAdapter exposes the menu feature to the cart as a pricing
// source without coupling the cart to menu domain types.
type MenuProviderAdapter struct {
	menu menuports.MenuService
}

// NewMenuProviderAdapter creates a new MenuProviderAdapter.
func NewMenuProviderAdapter(menu menuports.MenuService) *MenuProviderAdapter {
	return &MenuProviderAdapter{menu: menu}
}

// PricedItem resolves a menu item into cart pricing terms. Returns nil
// without error when the item does not exist.
func (a *MenuProviderAdapter) PricedItem(ctx context.Context, itemID string) (*cartports.PricedItem, error) {
	item, err := a.menu.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, menuservice.ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve menu item: %w", err)
	}

	return &cartports.PricedItem{
		ID:         item.ID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Available:  item.Available,
	}, nil
}
