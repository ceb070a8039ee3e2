package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingName     = errors.New("menu item name is required")
	ErrMissingCategory = errors.New("menu item category is required")
	ErrInvalidPrice    = errors.New("menu item price must be positive")
)

// MenuItem represents a dish or drink offered by the canteen.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Category groups items on the menu screen (e.g., "breakfast", "drinks").
	Category string `json:"category"`
	// PriceCents is the unit price in the smallest currency unit.
	PriceCents int64  `json:"price_cents"`
	ImageURL   string `json:"image_url,omitempty"`
	// Available marks whether the item can currently be ordered.
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMenuItem creates a new MenuItem and validates it. Items start available.
func NewMenuItem(id, name, description, category string, priceCents int64, imageURL string) (*MenuItem, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if category == "" {
		return nil, ErrMissingCategory
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		PriceCents:  priceCents,
		ImageURL:    imageURL,
		Available:   true,
		CreatedAt:   time.Now(),
	}, nil
}
