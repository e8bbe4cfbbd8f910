package stakeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"

const maxErrorBody = 512

// doREST issues one REST request and decodes the JSON response into out.
// Status classification happens here; retry decisions happen in the caller.
func (c *Client) doREST(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	if cancel != nil {
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	return c.send(req, path, out)
}

// send runs the prepared request under the in-flight semaphore and shapes
// the response. The semaphore bounds concurrent sockets, not rate; pacing
// belongs to the Limiter.
func (c *Client) send(req *http.Request, path string, out any) error {
	start := time.Now()

	if err := c.sem.Acquire(req.Context(), 1); err != nil {
		return err
	}
	defer c.sem.Release(1)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyNetErr(err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: "read response", Err: err}
	}

	c.log.Debug("request complete",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := classifyStatus(resp, respBody); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "application/graphql+json, application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", c.cfg.BaseURL)
	req.Header.Set("Referer", strings.TrimRight(c.cfg.BaseURL, "/")+"/")
	req.Header.Set("X-Language", "en")
	c.cred.apply(req)
}

func (c *Client) userAgent() string {
	if c.cfg.UserAgent != "" {
		return c.cfg.UserAgent
	}
	return defaultUserAgent
}

// classifyStatus maps upstream statuses onto the error taxonomy. 5xx is
// transient; 401 and 4xx validation failures are not.
func classifyStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode < http.StatusBadRequest:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{Message: "invalid access token or unauthorized access"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfterHeader(resp), Message: "rate limit exceeded"}
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &ValidationError{Message: snippet(body)}
	default:
		return &UpstreamError{StatusCode: resp.StatusCode, Body: snippet(body)}
	}
}

// classifyNetErr wraps transport failures, flagging deadline expiry so the
// retry layer can tell a timeout from a refused connection.
func classifyNetErr(err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded)
	var netErr net.Error
	if !timeout && errors.As(err, &netErr) {
		timeout = netErr.Timeout()
	}
	return &NetworkError{Op: "request", Timeout: timeout, Err: err}
}

// retryAfterHeader parses a Retry-After header as either delta-seconds or
// an HTTP date. Zero means the upstream gave no hint.
func retryAfterHeader(resp *http.Response) time.Duration {
	retry := resp.Header.Get("Retry-After")
	if retry == "" {
		return 0
	}
	if d, err := time.ParseDuration(retry + "s"); err == nil {
		return d
	}
	if parsed, err := http.ParseTime(retry); err == nil {
		if until := time.Until(parsed); until > 0 {
			return until
		}
	}
	return 0
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}
	return s
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, nil
	}
	return context.WithTimeout(ctx, timeout)
}
