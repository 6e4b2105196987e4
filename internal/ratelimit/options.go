// Package ratelimit implements a fixed-window request limiter keyed by
// client address.
package ratelimit

import "time"

// Option applies a configuration option to the limiter.
type Option func(*windowLimiter)

// WithLimit sets the number of requests allowed per key per window.
func WithLimit(limit int) Option {
	return func(l *windowLimiter) {
		if limit > 0 {
			l.limit = limit
		}
	}
}

// WithWindow sets the window length.
func WithWindow(length time.Duration) Option {
	return func(l *windowLimiter) {
		if length > 0 {
			l.length = length
		}
	}
}

// WithClock replaces the time source; tests use this to advance the window.
func WithClock(now func() time.Time) Option {
	return func(l *windowLimiter) {
		if now != nil {
			l.now = now
		}
	}
}
