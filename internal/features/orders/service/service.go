package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/orders/domain"
	"canteen-api/internal/features/orders/ports"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	repo    ports.OrderRepository
	cart    ports.CartProvider
	coupons ports.DiscountApplier
	gateway ports.PaymentGateway
	clock   clockwork.Clock
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	repo ports.OrderRepository,
	cart ports.CartProvider,
	coupons ports.DiscountApplier,
	gateway ports.PaymentGateway,
	clock clockwork.Clock,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:    repo,
		cart:    cart,
		coupons: coupons,
		gateway: gateway,
		clock:   clock,
	}
}

// Checkout turns the customer's cart into a paid order. The coupon code is
// optional. Payment failures abort the checkout and leave the cart intact.
func (s *OrderServiceImpl) Checkout(ctx context.Context, customerID, couponCode string) (*domain.Order, error) {
	cart, err := s.cart.Cart(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var discount int64
	if couponCode != "" {
		discount, err = s.coupons.Discount(ctx, couponCode, cart.SubtotalCents)
		if err != nil {
			// Coupon rejections carry their own sentinel errors.
			return nil, err
		}
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Items:         cart.Items,
		SubtotalCents: cart.SubtotalCents,
		DiscountCents: discount,
		TotalCents:    cart.SubtotalCents - discount,
		CouponCode:    couponCode,
		Status:        domain.StatusPlaced,
		CreatedAt:     s.clock.Now(),
		UpdatedAt:     s.clock.Now(),
	}

	receipt, err := s.gateway.CreatePayment(ctx, order.ID, order.TotalCents)
	if err != nil {
		return nil, fmt.Errorf("service: payment failed: %w", err)
	}
	order.PaymentReference = receipt.Reference

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("service: failed to save order: %w", err)
	}

	// The payment went through, so a stale cart is the lesser failure.
	if err := s.cart.Clear(ctx, customerID); err != nil {
		logger.Get().Warn("Failed to clear cart after checkout",
			zap.String("customer_id", customerID),
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	return order, nil
}

// GetOrder fetches an order by id.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns the customer's orders, newest first.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	all, err := s.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0)
	for _, order := range all {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first.
func (s *OrderServiceImpl) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateStatus moves an order through the kitchen workflow.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.Transition(status); err != nil {
		return nil, err
	}
	order.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("service: failed to save order: %w", err)
	}
	return order, nil
}
