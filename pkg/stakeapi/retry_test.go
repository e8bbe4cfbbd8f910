package stakeapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// sleepRecorder captures backoff delays instead of waiting them out.
type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.delays = append(s.delays, d)
	return nil
}

func testPolicy(attempts int) (RetryPolicy, *sleepRecorder) {
	rec := &sleepRecorder{}
	return RetryPolicy{
		MaxAttempts: attempts,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		sleep:       rec.sleep,
	}, rec
}

func TestExecuteReturnsFirstSuccess(t *testing.T) {
	p, rec := testPolicy(3)
	calls := 0
	out, err := execute(context.Background(), p, false, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, 1, calls)
	require.Empty(t, rec.delays)
}

func TestExecuteRetriesRateLimitThenSucceeds(t *testing.T) {
	p, rec := testPolicy(3)
	calls := 0
	out, err := execute(context.Background(), p, false, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, &RateLimitError{Message: "rate limit exceeded"}
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, out)
	require.Equal(t, 3, calls)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, rec.delays)
}

func TestExecuteExponentialSchedule(t *testing.T) {
	p, rec := testPolicy(4)
	calls := 0
	upstream := &UpstreamError{StatusCode: http.StatusBadGateway}
	_, err := execute(context.Background(), p, false, func(ctx context.Context) (struct{}, error) {
		calls++
		return struct{}{}, upstream
	})

	require.Equal(t, 4, calls)
	require.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
	}, rec.delays)

	var exhausted *RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Equal(t, 4, exhausted.Attempts)
	require.ErrorIs(t, err, upstream, "exhaustion must surface the last transient error")
}

func TestExecuteDoesNotRetryFatal(t *testing.T) {
	for name, fatal := range map[string]error{
		"authentication": &AuthenticationError{Message: "bad token"},
		"validation":     &ValidationError{Field: "amount", Message: "must be positive"},
		"client status":  &UpstreamError{StatusCode: http.StatusNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			p, rec := testPolicy(3)
			calls := 0
			_, err := execute(context.Background(), p, false, func(ctx context.Context) (struct{}, error) {
				calls++
				return struct{}{}, fatal
			})
			require.Equal(t, 1, calls)
			require.Equal(t, fatal, err)
			require.Empty(t, rec.delays)
		})
	}
}

func TestExecuteMutatingNeverRetriesTimeout(t *testing.T) {
	p, rec := testPolicy(3)
	calls := 0
	timeout := &NetworkError{Op: "request", Timeout: true, Err: context.DeadlineExceeded}
	_, err := execute(context.Background(), p, true, func(ctx context.Context) (struct{}, error) {
		calls++
		return struct{}{}, timeout
	})
	require.Equal(t, 1, calls, "an ambiguous timeout on a mutating call must not be retried")
	require.Equal(t, timeout, err)
	require.Empty(t, rec.delays)
}

func TestExecuteMutatingRetriesRateLimit(t *testing.T) {
	p, _ := testPolicy(3)
	calls := 0
	out, err := execute(context.Background(), p, true, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", &RateLimitError{Message: "rejected before processing"}
		}
		return "placed", nil
	})
	require.NoError(t, err)
	require.Equal(t, "placed", out)
	require.Equal(t, 2, calls)
}

func TestExecuteHonoursRetryAfter(t *testing.T) {
	p, rec := testPolicy(2)
	calls := 0
	_, _ = execute(context.Background(), p, false, func(ctx context.Context) (struct{}, error) {
		calls++
		return struct{}{}, &RateLimitError{RetryAfter: 5 * time.Second}
	})
	require.Equal(t, 2, calls)
	require.Equal(t, []time.Duration{5 * time.Second}, rec.delays)
}

func TestDelayCapAndJitter(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 4 * time.Second}
	require.Equal(t, time.Second, p.Delay(0))
	require.Equal(t, 2*time.Second, p.Delay(1))
	require.Equal(t, 4*time.Second, p.Delay(2))
	require.Equal(t, 4*time.Second, p.Delay(10))

	p.Jitter = true
	p.rand = func() float64 { return 1 }
	require.Equal(t, 2*time.Second, p.Delay(1), "full jitter keeps the upper bound")
	p.rand = func() float64 { return 0 }
	require.Equal(t, time.Second, p.Delay(1), "jitter floor is half the delay")
}

func TestExecuteSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}
	calls := 0
	_, err := execute(ctx, p, false, func(ctx context.Context) (struct{}, error) {
		calls++
		return struct{}{}, &RateLimitError{}
	})
	require.Equal(t, 1, calls)
	require.True(t, errors.Is(err, context.Canceled))
}
