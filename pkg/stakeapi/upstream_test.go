package stakeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// upstream is a fixture platform API served over httptest, routed with
// chi the way the real API lays out its paths.
type upstream struct {
	server *httptest.Server
	router chi.Router
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	router := chi.NewRouter()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &upstream{server: server, router: router}
}

// client opens a session against the fixture with fast retries.
func (u *upstream) client(t *testing.T, opts ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		BaseURL:     u.server.URL,
		AccessToken: "testtokentesttokentesttokentest1",
		Timeout:     2 * time.Second,
		RateLimit:   1000,
		Retry: RetryPolicy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := New(cfg, WithHTTPClient(u.server.Client()))
	require.NoError(t, err)
	require.NoError(t, c.Open(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}
