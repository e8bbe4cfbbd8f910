package stakeapi

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Retry defaults. Delays grow as base × 2^attempt up to the cap.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultMaxDelay    = 8 * time.Second
)

// RetryPolicy describes how transient failures are retried. The zero value
// disables retries; use DefaultRetryPolicy for the standard schedule.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool

	sleep func(ctx context.Context, d time.Duration) error
	rand  func() float64
}

// DefaultRetryPolicy returns the standard schedule: three attempts with
// jittered exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxDelay:    DefaultMaxDelay,
		Jitter:      true,
	}
}

// Delay returns the backoff before retrying after the given failed attempt
// (0-based), independent of real time so schedules are testable.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay
	if d <= 0 {
		d = DefaultBaseDelay
	}
	for i := 0; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.Jitter {
		r := rand.Float64
		if p.rand != nil {
			r = p.rand
		}
		// Spread retries over [d/2, d] so herds of clients sharing the
		// schedule do not reissue in lockstep.
		d = d/2 + time.Duration(r()*float64(d/2))
	}
	return d
}

// transient reports whether err is expected to resolve on retry.
func transient(err error) bool {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Transient()
	}
	return false
}

// preSendSafe reports whether err is guaranteed to have occurred before the
// upstream committed anything. Only rate-limit rejections qualify: the
// upstream refuses those before processing. Timeouts and connection errors
// are ambiguous once the request may have been sent.
func preSendSafe(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// execute runs op under the policy. Mutating operations are retried only on
// failures that preSendSafe classifies as rejected-before-processing, so a
// wager is never double-submitted after an ambiguous timeout. Exhaustion
// surfaces the last transient error inside a RetryExhaustedError.
func execute[T any](ctx context.Context, p RetryPolicy, mutating bool, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if mutating {
			if !preSendSafe(err) {
				return zero, err
			}
		} else if !transient(err) {
			return zero, err
		}

		if attempt == attempts-1 {
			break
		}

		delay := p.Delay(attempt)
		var rl *RateLimitError
		if errors.As(err, &rl) && rl.RetryAfter > delay {
			delay = rl.RetryAfter
		}
		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, &RetryExhaustedError{Attempts: attempts, Err: lastErr}
}
