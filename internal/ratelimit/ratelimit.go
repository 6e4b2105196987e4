// Package ratelimit implements a fixed-window request limiter keyed by
// client address. It is constructed once at process start and injected into
// the HTTP pipeline; there is no ambient global state.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a request from a given key may proceed.
type Limiter interface {
	// Allow records one request for key and reports whether it is within
	// the window's budget. retryAfter is the time until the window resets
	// and is only meaningful when allowed is false.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration)

	// Size returns the number of tracked keys, for introspection.
	Size() int
}

type window struct {
	count   int
	resetAt time.Time
}

// windowLimiter implements Limiter with one counter per key. Counters reset
// when their window elapses; stale keys are swept opportunistically so the
// map does not grow without bound.
type windowLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	length    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// New creates a limiter with the default budget (100 requests per 15
// minutes) unless overridden by options.
func New(opts ...Option) Limiter {
	l := &windowLimiter{
		windows: make(map[string]*window),
		limit:   100,
		length:  15 * time.Minute,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow records one request for key and reports whether it fits the budget.
func (l *windowLimiter) Allow(_ context.Context, key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.length)}
		return true, 0
	}
	if w.count >= l.limit {
		return false, w.resetAt.Sub(now)
	}
	w.count++
	return true, 0
}

// Size returns the number of tracked keys.
func (l *windowLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// sweepLocked drops expired windows at most once per window length.
// Callers must hold the mutex.
func (l *windowLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.length {
		return
	}
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
