package service

import (
	"context"
	"errors"
	"fmt"

	"canteen-api/internal/features/menu/domain"
	"canteen-api/internal/features/menu/ports"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when the menu item does not exist.
var ErrItemNotFound = errors.New("menu item not found")

// MenuServiceImpl implements ports.MenuService.
type MenuServiceImpl struct {
	repo ports.MenuRepository
}

// NewMenuService creates a new MenuServiceImpl.
func NewMenuService(repo ports.MenuRepository) *MenuServiceImpl {
	return &MenuServiceImpl{
		repo: repo,
	}
}

// ListItems returns menu items, optionally filtered by category.
func (s *MenuServiceImpl) ListItems(ctx context.Context, category string) ([]domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list menu items: %w", err)
	}

	if category == "" {
		return items, nil
	}

	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetItem retrieves a single menu item.
func (s *MenuServiceImpl) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// UpsertItem validates and stores a menu item. An empty id creates a new item.
func (s *MenuServiceImpl) UpsertItem(ctx context.Context, id, name, description, category string, priceCents int64, imageURL string) (*domain.MenuItem, error) {
	if id == "" {
		id = uuid.NewString()
	}

	item, err := domain.NewMenuItem(id, name, description, category, priceCents, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("service: failed to save menu item: %w", err)
	}

	return item, nil
}

// DeleteItem removes a menu item.
func (s *MenuServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete menu item: %w", err)
	}
	return nil
}

// SetAvailability flips whether an item can be ordered.
func (s *MenuServiceImpl) SetAvailability(ctx context.Context, id string, available bool) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get menu item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	item.Available = available
	if err := s.repo.Save(ctx, item); err != nil {
		return fmt.Errorf("service: failed to update menu item: %w", err)
	}
	return nil
}
