package stakeapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "://not-a-url"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "base_url", ve.Field)
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	require.Equal(t, defaultTimeout, c.cfg.Timeout)
	require.Equal(t, defaultRateLimit, c.cfg.RateLimit)
	require.Equal(t, DefaultMaxAttempts, c.retry.MaxAttempts)
}

func TestClientRequiresOpen(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	_, err = c.CasinoGames(context.Background(), GamesOptions{})
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestCloseIsIdempotentAndFinal(t *testing.T) {
	u := newUpstream(t)
	u.router.Get("/api/v1/casino/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"games":[]}`)
	})
	c := u.client(t)

	_, err := c.CasinoGames(context.Background(), GamesOptions{})
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err = c.CasinoGames(context.Background(), GamesOptions{})
	require.ErrorIs(t, err, ErrSessionClosed)

	require.ErrorIs(t, c.Open(context.Background()), ErrSessionClosed)
}

func TestSessionClosesOnEveryExitPath(t *testing.T) {
	u := newUpstream(t)
	u.router.Get("/api/v1/casino/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"games":[]}`)
	})

	boom := errors.New("boom")
	var leaked *Client
	err := Session(context.Background(), Config{BaseURL: u.server.URL}, func(c *Client) error {
		leaked = c
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = leaked.CasinoGames(context.Background(), GamesOptions{})
	require.ErrorIs(t, err, ErrSessionClosed, "session must be closed after fn returns an error")
}
