package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"canteen-api/internal/core/config"
	"canteen-api/internal/core/httpclient"
	"canteen-api/internal/core/logger"
	"canteen-api/internal/features/payments/domain"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	// expiryMargin is subtracted from the server-reported expiry so a token
	// is never presented moments before it lapses.
	expiryMargin = 5 * time.Minute
	// shortLivedMargin replaces expiryMargin for tokens whose lifetime is
	// shorter than the margin itself.
	shortLivedMargin = 5 * time.Second
	// fallbackValidity is assumed when the server omits an expiry.
	fallbackValidity = 55 * time.Minute
)

// cachedToken is the single cache slot.
type cachedToken struct {
	value     string
	expiresAt time.Time
}

// OAuthTokenSource implements ports.TokenSource with a single-slot expiring
// cache over a client-credentials grant. Concurrent callers during a cache
// miss may each issue a network request; token issuance is idempotent so the
// redundant call is acceptable, and both converge on valid tokens.
type OAuthTokenSource struct {
	client *http.Client
	clock  clockwork.Clock
	cfg    config.PaymentConfig

	mu     sync.Mutex
	cached *cachedToken
}

// NewOAuthTokenSource creates a token source for the configured gateway
// identity endpoint.
func NewOAuthTokenSource(cfg config.PaymentConfig, clock clockwork.Clock) *OAuthTokenSource {
	return &OAuthTokenSource{
		client: httpclient.NewClient(10 * time.Second),
		clock:  clock,
		cfg:    cfg,
	}
}

// tokenResponse is the identity endpoint response shape.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	// ExpiresAt is an epoch timestamp in seconds; optional.
	ExpiresAt int64 `json:"expires_at"`
}

// Token returns the cached bearer token while it is still valid, otherwise
// requests a fresh one.
func (s *OAuthTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.cached != nil && s.clock.Now().Before(s.cached.expiresAt) {
		token := s.cached.value
		s.mu.Unlock()
		return token, nil
	}
	s.mu.Unlock()

	token, expiresAt, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cached = &cachedToken{value: token, expiresAt: expiresAt}
	s.mu.Unlock()

	logger.Get().Debug("Gateway token refreshed", zap.Time("expires_at", expiresAt))
	return token, nil
}

// fetch performs the client-credentials grant against the token endpoint.
func (s *OAuthTokenSource) fetch(ctx context.Context) (string, time.Time, error) {
	form := url.Values{}
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to create token request: %v", domain.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: token request failed: %v", domain.ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("%w: token endpoint returned status %d", domain.ErrAuth, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to decode token response: %v", domain.ErrAuth, err)
	}

	if tr.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("%w: token response missing access_token", domain.ErrAuth)
	}

	return tr.AccessToken, s.expiry(tr.ExpiresAt), nil
}

// expiry derives the cache deadline from the server-reported expiry.
func (s *OAuthTokenSource) expiry(serverExpiry int64) time.Time {
	now := s.clock.Now()
	if serverExpiry <= 0 {
		return now.Add(fallbackValidity)
	}

	reported := time.Unix(serverExpiry, 0)
	withMargin := reported.Add(-expiryMargin)
	if withMargin.After(now) {
		return withMargin
	}
	// Token lifetime is shorter than the margin; keep a minimal safety gap
	// instead of discarding the token immediately.
	return reported.Add(-shortLivedMargin)
}
