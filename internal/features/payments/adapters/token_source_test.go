package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"canteen-api/internal/core/config"
	"canteen-api/internal/features/payments/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenEndpoint spins up a fake identity endpoint and counts issued tokens.
func tokenEndpoint(t *testing.T, respond func(w http.ResponseWriter, calls int64)) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		require.Equal(t, "client_test", r.PostForm.Get("client_id"))

		n := atomic.AddInt64(&calls, 1)
		respond(w, n)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func newTokenSource(url string, clock clockwork.Clock) *OAuthTokenSource {
	return NewOAuthTokenSource(config.PaymentConfig{
		TokenURL:     url,
		ClientID:     "client_test",
		ClientSecret: "secret_test",
	}, clock)
}

func TestOAuthTokenSource_CachesWithinExpiryWindow(t *testing.T) {
	fc := clockwork.NewFakeClock()
	ts, calls := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_at":%d}`, n, fc.Now().Unix()+3600)
	})

	src := newTokenSource(ts.URL, fc)
	ctx := context.Background()

	first, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	// Two sequential calls within the window return the identical token
	// without a second network call.
	second, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, *calls)
}

func TestOAuthTokenSource_RefreshesAfterExpiry(t *testing.T) {
	fc := clockwork.NewFakeClock()
	ts, calls := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_at":%d}`, n, fc.Now().Unix()+3600)
	})

	src := newTokenSource(ts.URL, fc)
	ctx := context.Background()

	first, err := src.Token(ctx)
	require.NoError(t, err)

	// Valid for 1h minus the 5min safety margin.
	fc.Advance(54 * time.Minute)
	cached, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
	assert.EqualValues(t, 1, *calls)

	fc.Advance(2 * time.Minute)
	fresh, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", fresh)
	assert.EqualValues(t, 2, *calls)
}

func TestOAuthTokenSource_ShortLivedToken(t *testing.T) {
	fc := clockwork.NewFakeClock()
	ts, calls := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
		// 60-second token: shorter than the regular safety margin.
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_at":%d}`, n, fc.Now().Unix()+60)
	})

	src := newTokenSource(ts.URL, fc)
	ctx := context.Background()

	_, err := src.Token(ctx)
	require.NoError(t, err)

	// Cached until ~55 seconds after issuance.
	fc.Advance(54 * time.Second)
	_, err = src.Token(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, *calls)

	// A call at +56s issues a fresh request.
	fc.Advance(2 * time.Second)
	_, err = src.Token(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, *calls)
}

func TestOAuthTokenSource_FallbackValidityWithoutServerExpiry(t *testing.T) {
	fc := clockwork.NewFakeClock()
	ts, calls := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
		fmt.Fprintf(w, `{"access_token":"token-%d"}`, n)
	})

	src := newTokenSource(ts.URL, fc)
	ctx := context.Background()

	_, err := src.Token(ctx)
	require.NoError(t, err)

	fc.Advance(54 * time.Minute)
	_, err = src.Token(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, *calls)

	fc.Advance(2 * time.Minute)
	_, err = src.Token(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, *calls)
}

func TestOAuthTokenSource_Errors(t *testing.T) {
	t.Run("MissingAccessToken", func(t *testing.T) {
		ts, _ := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
			fmt.Fprint(w, `{"expires_at": 9999999999}`)
		})
		src := newTokenSource(ts.URL, clockwork.NewFakeClock())

		_, err := src.Token(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuth)
	})

	t.Run("EndpointError", func(t *testing.T) {
		ts, _ := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		src := newTokenSource(ts.URL, clockwork.NewFakeClock())

		_, err := src.Token(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuth)
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		ts, _ := tokenEndpoint(t, func(w http.ResponseWriter, n int64) {
			fmt.Fprint(w, "not-json")
		})
		src := newTokenSource(ts.URL, clockwork.NewFakeClock())

		_, err := src.Token(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuth)
	})

	t.Run("Unreachable", func(t *testing.T) {
		src := newTokenSource("http://127.0.0.1:1", clockwork.NewFakeClock())

		_, err := src.Token(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuth)
	})
}
