package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen-api/internal/features/cart/domain"
	"canteen-api/internal/features/cart/ports"
)

var (
	// ErrItemNotOnMenu is returned when the requested item does not exist.
	ErrItemNotOnMenu = errors.New("item not on menu")
	// ErrItemUnavailable is returned when the item is currently not orderable.
	ErrItemUnavailable = errors.New("item currently unavailable")
	// ErrItemNotInCart is returned when updating or removing an absent line.
	ErrItemNotInCart = errors.New("item not in cart")
)

// CartServiceImpl implements ports.CartService.
type CartServiceImpl struct {
	repo ports.CartRepository
	menu ports.MenuProvider
}

// NewCartService creates a new CartServiceImpl.
func NewCartService(repo ports.CartRepository, menu ports.MenuProvider) *CartServiceImpl {
	return &CartServiceImpl{
		repo: repo,
		menu: menu,
	}
}

// Get returns the customer's cart, or an empty cart when none is stored.
func (s *CartServiceImpl) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get cart: %w", err)
	}
	if cart == nil {
		return domain.NewCart(customerID), nil
	}
	return cart, nil
}

// AddItem prices the item against the current menu and merges it into the cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	priced, err := s.menu.PricedItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve menu item: %w", err)
	}
	if priced == nil {
		return nil, ErrItemNotOnMenu
	}
	if !priced.Available {
		return nil, ErrItemUnavailable
	}

	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.Add(domain.CartItem{
		ItemID:         priced.ID,
		Name:           priced.Name,
		UnitPriceCents: priced.PriceCents,
		Quantity:       quantity,
	})

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of an existing line. A non-positive
// quantity removes the line.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, customerID, itemID string, quantity int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if !cart.Remove(itemID) {
			return nil, ErrItemNotInCart
		}
	} else if !cart.SetQuantity(itemID, quantity) {
		return nil, ErrItemNotInCart
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line from the cart.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, customerID, itemID string) (*domain.Cart, error) {
	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(itemID) {
		return nil, ErrItemNotInCart
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear drops the customer's cart entirely.
func (s *CartServiceImpl) Clear(ctx context.Context, customerID string) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartServiceImpl) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("service: failed to save cart: %w", err)
	}
	return nil
}
