package ports

import (
	"context"

	"canteen-api/internal/features/orders/domain"
	paymentports "canteen-api/internal/features/payments/ports"
)

// OrderService defines the primary port for order operations.
type OrderService interface {
	// Checkout turns the customer's cart into a paid order.
	Checkout(ctx context.Context, customerID, couponCode string) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// CheckoutCart is a customer's cart as the checkout needs to see it.
type CheckoutCart struct {
	Items         []domain.OrderItem
	SubtotalCents int64
}

// CartProvider exposes the cart feature to the checkout.
type CartProvider interface {
	// Cart returns the customer's cart, empty when none is stored.
	Cart(ctx context.Context, customerID string) (*CheckoutCart, error)
	// Clear drops the cart after a successful checkout.
	Clear(ctx context.Context, customerID string) error
}

// DiscountApplier exposes the coupon feature to the checkout.
type DiscountApplier interface {
	// Discount returns the discount in cents for the code, or a coupon
	// rejection error.
	Discount(ctx context.Context, code string, subtotalCents int64) (int64, error)
}

// PaymentGateway aliases the payments secondary port so the checkout wires
// against one package.
type PaymentGateway = paymentports.PaymentGateway
