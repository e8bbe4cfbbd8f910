package stakeapi

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	defaultBaseURL       = "https://stake.example.com"
	defaultTimeout       = 30 * time.Second
	defaultRateLimit     = 10
	defaultMaxConcurrent = 8
)

// Config carries the transport configuration for a Client. The zero value
// of every field falls back to a sane default; only credentials have none.
type Config struct {
	// BaseURL is the platform origin, without a trailing path.
	BaseURL string

	// AccessToken is the x-access-token header value extracted from a
	// logged-in browser session.
	AccessToken string

	// SessionCookie optionally carries the session cookie alongside the
	// token.
	SessionCookie string

	// Timeout bounds each request attempt.
	Timeout time.Duration

	// RateLimit is the maximum requests per second across all accessors
	// sharing the session.
	RateLimit int

	// MaxConcurrent bounds in-flight requests over the shared connection
	// pool.
	MaxConcurrent int64

	// Retry governs backoff for transient failures.
	Retry RetryPolicy

	// UserAgent overrides the browser-profile default.
	UserAgent string
}

type sessionState int

const (
	stateNew sessionState = iota
	stateOpen
	stateClosed
)

// Client is a session against the platform API. All accessors share one
// rate window and one connection pool; construct it with New, Open it
// before first use and Close it when done.
type Client struct {
	cfg     Config
	cred    *Credential
	limiter *Limiter
	retry   RetryPolicy
	sem     *semaphore.Weighted
	log     *zap.Logger

	mu         sync.Mutex
	state      sessionState
	httpClient *http.Client
}

// Option adjusts client construction.
type Option func(*Client)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client, typically for
// tests against a fixture server.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New builds a Client from the configuration. The client is not usable
// until Open.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ValidationError{Field: "base_url", Message: "must be an absolute URL"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryPolicy()
	}

	c := &Client{
		cfg: cfg,
		cred: &Credential{
			AccessToken:   cfg.AccessToken,
			SessionCookie: cfg.SessionCookie,
		},
		limiter: NewLimiter(cfg.RateLimit, time.Second),
		retry:   cfg.Retry,
		sem:     semaphore.NewWeighted(cfg.MaxConcurrent),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Open prepares the session for use. It is an error to open a closed
// session; build a fresh client instead.
func (c *Client) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateOpen:
		return nil
	case stateClosed:
		return ErrSessionClosed
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.cfg.Timeout}
	}
	c.state = stateOpen
	c.log.Debug("session opened",
		zap.String("base_url", c.cfg.BaseURL),
		zap.Int("rate_limit", c.cfg.RateLimit),
	)
	return nil
}

// Close releases the underlying connection pool. Safe to call more than
// once; accessors called afterwards return ErrSessionClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateClosed {
		return nil
	}
	c.state = stateClosed
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	c.log.Debug("session closed")
	return nil
}

// Session opens a client for the duration of fn, closing it on every exit
// path.
func Session(ctx context.Context, cfg Config, fn func(*Client) error, opts ...Option) error {
	c, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	if err := c.Open(ctx); err != nil {
		return err
	}
	defer c.Close() // nolint:errcheck // best-effort cleanup

	return fn(c)
}

func (c *Client) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateOpen {
		return ErrSessionClosed
	}
	return nil
}

// call runs op under the retry policy, gating each attempt through the
// rate limiter. Mutating calls restrict retries to rejections guaranteed
// to precede upstream commit.
func call[T any](ctx context.Context, c *Client, mutating bool, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := c.ensureOpen(); err != nil {
		return zero, err
	}

	attempt := 0
	return execute(ctx, c.retry, mutating, func(ctx context.Context) (T, error) {
		attempt++
		if err := c.limiter.Admit(ctx); err != nil {
			return zero, err
		}
		out, err := op(ctx)
		if err != nil && attempt < c.retry.MaxAttempts && !errorsFatal(err, mutating) {
			c.log.Debug("transient failure", zap.Int("attempt", attempt), zap.Error(err))
		}
		return out, err
	})
}

func errorsFatal(err error, mutating bool) bool {
	if mutating {
		return !preSendSafe(err)
	}
	return !transient(err)
}
