package stakeapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.Contains(t, (&AuthenticationError{Message: "expired"}).Error(), "expired")
	require.Contains(t, (&RateLimitError{RetryAfter: 3 * time.Second}).Error(), "retry after 3s")
	require.Contains(t, (&ValidationError{Field: "amount", Message: "must be positive"}).Error(), "invalid amount")
	require.Contains(t, (&UpstreamError{StatusCode: 502, Body: "bad gateway"}).Error(), "status 502")
	require.Contains(t, (&UpstreamError{Messages: []string{"a", "b"}}).Error(), "graphql errors: a, b")
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetching games: %w", &NetworkError{Op: "request", Err: cause})
	require.ErrorIs(t, err, cause)
}

func TestRetryExhaustedUnwrap(t *testing.T) {
	last := &RateLimitError{Message: "rate limit exceeded"}
	err := &RetryExhaustedError{Attempts: 3, Err: last}

	var rl *RateLimitError
	require.ErrorAs(t, err, &rl)
	require.Contains(t, err.Error(), "3 attempts")
}

func TestUpstreamTransient(t *testing.T) {
	require.True(t, (&UpstreamError{StatusCode: http.StatusInternalServerError}).Transient())
	require.True(t, (&UpstreamError{StatusCode: http.StatusServiceUnavailable}).Transient())
	require.False(t, (&UpstreamError{StatusCode: http.StatusNotFound}).Transient())
	require.False(t, (&UpstreamError{StatusCode: http.StatusOK}).Transient())
}
