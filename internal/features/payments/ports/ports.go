package ports

import (
	"context"

	"canteen-api/internal/features/payments/domain"
)

// TokenSource yields a valid gateway bearer token, reusing a cached one while
// it has not expired.
type TokenSource interface {
	// Token returns a bearer token or domain.ErrAuth when the identity
	// endpoint fails.
	Token(ctx context.Context) (string, error)
}

// PaymentGateway defines the secondary port for initiating payments.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, orderID string, amountCents int64) (*domain.PaymentReceipt, error)
}
