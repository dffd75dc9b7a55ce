// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"

	bclock "github.com/benbjohnson/clock"
)

// Sleep waits for d on clk or returns early if the context is canceled.
// A nil clk uses the wall clock.
func Sleep(ctx context.Context, clk bclock.Clock, d time.Duration) error {
	if clk == nil {
		clk = bclock.New()
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := clk.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff doubles d up to limit.
func Backoff(d, limit time.Duration) time.Duration {
	if d <= 0 {
		return time.Second
	}
	d *= 2
	if d > limit {
		return limit
	}
	return d
}
