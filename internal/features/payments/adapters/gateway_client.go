package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"canteen-api/internal/core/config"
	"canteen-api/internal/core/httpclient"
	"canteen-api/internal/features/payments/domain"
	"canteen-api/internal/features/payments/ports"
)

// GatewayClient implements ports.PaymentGateway against the configured
// payment gateway REST API, authenticating with the token source.
type GatewayClient struct {
	client *http.Client
	cfg    config.PaymentConfig
	tokens ports.TokenSource
}

// NewGatewayClient creates a new GatewayClient.
func NewGatewayClient(cfg config.PaymentConfig, tokens ports.TokenSource) *GatewayClient {
	return &GatewayClient{
		client: httpclient.NewClient(10 * time.Second),
		cfg:    cfg,
		tokens: tokens,
	}
}

// createPaymentRequest is the gateway request shape.
type createPaymentRequest struct {
	MerchantOrderID string `json:"merchant_order_id"`
	AmountCents     int64  `json:"amount"`
}

// createPaymentResponse is the gateway response shape.
type createPaymentResponse struct {
	Reference string `json:"reference"`
	State     string `json:"state"`
}

// CreatePayment initiates a payment for the given order. An authentication
// failure is fatal for the in-flight payment and surfaces as domain.ErrAuth.
func (g *GatewayClient) CreatePayment(ctx context.Context, orderID string, amountCents int64) (*domain.PaymentReceipt, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(createPaymentRequest{
		MerchantOrderID: orderID,
		AmountCents:     amountCents,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payment request: %v", domain.ErrGateway, err)
	}

	url := fmt.Sprintf("%s/v2/payments", g.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create payment request: %v", domain.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: payment request failed: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: gateway returned status %d", domain.ErrGateway, resp.StatusCode)
	}

	var cpr createPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cpr); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gateway response: %v", domain.ErrGateway, err)
	}

	return &domain.PaymentReceipt{
		Reference: cpr.Reference,
		State:     cpr.State,
	}, nil
}
