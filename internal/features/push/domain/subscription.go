package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrMissingEndpoint = errors.New("subscription endpoint is required")
	ErrMissingKeys     = errors.New("subscription encryption keys are required")
)

// Subscription is a Web Push subscription as the browser hands it out.
type Subscription struct {
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the subscription carries everything a push delivery needs.
func (s *Subscription) Validate() error {
	if s.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if s.P256dh == "" || s.Auth == "" {
		return ErrMissingKeys
	}
	return nil
}

// EndpointHash derives a stable storage key from the endpoint URL. Endpoints
// are long and contain characters unsuitable for key names.
func EndpointHash(endpoint string) string {
	sum := sha256.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:])
}
