package stakeapi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrSessionClosed is returned by client methods after Close, or before Open.
var ErrSessionClosed = errors.New("stakeapi: session is closed")

// AuthenticationError indicates a rejected or expired credential. It is never
// retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e == nil || e.Message == "" {
		return "authentication failed"
	}
	return "authentication failed: " + e.Message
}

// RateLimitError indicates the upstream rejected the request before
// processing it. RetryAfter is zero when the upstream did not send a
// Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e == nil {
		return "rate limited"
	}
	msg := e.Message
	if msg == "" {
		msg = "rate limited"
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", msg, e.RetryAfter)
	}
	return msg
}

// ValidationError indicates malformed caller input, either rejected locally
// before any request was sent or rejected by the upstream as a bad request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation failed"
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return "invalid request: " + e.Message
}

// NetworkError wraps a transport-level failure. Timeout distinguishes
// deadline expiry from other connection errors.
type NetworkError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return "network error"
	}
	if e.Timeout {
		return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError is returned when the upstream responds with an unexpected
// status, or with GraphQL-level errors in an otherwise successful response.
//
// Body holds a snippet of the response body and must never include
// credentials.
type UpstreamError struct {
	StatusCode int
	Body       string
	Messages   []string
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "upstream error"
	}
	if len(e.Messages) > 0 {
		return "graphql errors: " + strings.Join(e.Messages, ", ")
	}
	if e.Body != "" {
		return fmt.Sprintf("upstream request failed: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream request failed: status %d", e.StatusCode)
}

// Transient reports whether the failure is expected to resolve on retry.
func (e *UpstreamError) Transient() bool {
	return e != nil && e.StatusCode >= 500
}

// RetryExhaustedError is returned once a transient failure has survived the
// configured number of attempts. Err holds the last transient error observed,
// not a generic timeout.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	if e == nil {
		return "retries exhausted"
	}
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Err }
