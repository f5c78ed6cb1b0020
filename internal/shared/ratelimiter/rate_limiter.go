// Package ratelimiter paces successive outbound provider calls.
package ratelimiter

import (
	"log/slog"
	"time"
)

// Pacer enforces a minimum spacing between successive operations.
type Pacer interface {
	WaitIfNeeded()
}

// Interval keeps at least a fixed gap between calls. The first call never
// waits. Not safe for concurrent use; callers hold it inside a sequential
// loop.
type Interval struct {
	gap  time.Duration
	last time.Time
}

// NewInterval creates an Interval pacer with the given minimum gap.
func NewInterval(gap time.Duration) *Interval {
	return &Interval{gap: gap}
}

// WaitIfNeeded sleeps until the configured gap has elapsed since the
// previous call, then records the current time.
func (i *Interval) WaitIfNeeded() {
	if !i.last.IsZero() {
		if sleep := i.gap - time.Since(i.last); sleep > 0 {
			slog.Debug("pacing provider call", "sleep", sleep)
			time.Sleep(sleep)
		}
	}
	i.last = time.Now()
}
