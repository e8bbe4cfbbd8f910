package stakeapi

import (
	"context"
	"sync"
	"time"
)

// Limiter bounds outbound request rate over a trailing window: at most
// limit admissions inside any interval of length window.
//
// Admission is not first-come-first-served. Concurrent waiters are released
// in whatever order they reacquire the lock; the only guarantee is that no
// caller proceeds sooner than capacity allows.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	stamps []time.Time

	clock func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLimiter returns a limiter admitting at most limit requests per window.
// A limit or window of zero or less disables limiting.
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		clock:  func() time.Time { return time.Now().UTC() },
		sleep:  sleepCtx,
	}
}

// Admit blocks until issuing one more request stays within the configured
// rate, then records the admission and returns. It returns early with
// ctx.Err() if the context is cancelled while waiting; a cancelled caller
// leaves no trace in the window.
func (l *Limiter) Admit(ctx context.Context) error {
	if l == nil || l.limit <= 0 || l.window <= 0 {
		return ctx.Err()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.mu.Lock()
		now := l.clock()
		l.evict(now)
		if len(l.stamps) < l.limit {
			l.stamps = append(l.stamps, now)
			l.mu.Unlock()
			return nil
		}
		wait := l.stamps[0].Add(l.window).Sub(now)
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Pending reports how many admissions currently count against the window.
func (l *Limiter) Pending() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evict(l.clock())
	return len(l.stamps)
}

// evict drops timestamps older than the window boundary. Callers hold mu.
func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
