package utils

import (
	"context"
	"time"
)

// WaitFor sleeps for the given duration unless the context is canceled
// first, in which case the context error is returned. The timer is stopped
// on cancellation so nothing keeps ticking for the full duration.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the delay before the given zero-based retry attempt: the
// base duration grown linearly per attempt.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return base * time.Duration(attempt+1)
}
