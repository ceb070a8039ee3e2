package domain

import "errors"

var (
	// ErrAuth is returned when a gateway bearer token cannot be obtained.
	// It is fatal for the in-flight payment; no retry is attempted.
	ErrAuth = errors.New("payment authentication failed")
	// ErrGateway is returned when the payment gateway rejects or fails a request.
	ErrGateway = errors.New("payment gateway request failed")
)

// PaymentReceipt is the gateway acknowledgement for an initiated payment.
type PaymentReceipt struct {
	// Reference is the gateway-side identifier for the payment.
	Reference string `json:"reference"`
	// State is the gateway-reported payment state.
	State string `json:"state"`
}
