// Package ratelimit implements a process-local sliding-window rate limiter.
// State resets on restart; multi-instance deployments would need a shared
// backend instead.
package ratelimit

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// Result reports the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	Limit     int
	ResetAt   time.Time // when the oldest request in the window expires
}

// Limiter tracks request timestamps per key inside a sliding window.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu          sync.Mutex
	hits        map[string][]time.Time
	lastCleanup time.Time
}

// New returns a limiter allowing limit requests per key per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// Allow records a request for key and reports whether it fits in the window.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cleanupLocked(now)

	windowStart := now.Add(-l.window)
	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.hits[key] = recent
		// A non-positive limit denies everything; there is no oldest hit
		// to expire, so the reset is simply one window out.
		resetAt := now.Add(l.window)
		if len(recent) > 0 {
			resetAt = recent[0].Add(l.window)
		}
		return Result{
			Allowed:   false,
			Remaining: 0,
			Limit:     l.limit,
			ResetAt:   resetAt,
		}
	}

	recent = append(recent, now)
	l.hits[key] = recent
	return Result{
		Allowed:   true,
		Remaining: l.limit - len(recent),
		Limit:     l.limit,
		ResetAt:   recent[0].Add(l.window),
	}
}

// cleanupLocked drops keys with no activity in the last two windows. It runs
// at most once per cleanupInterval, piggybacking on Allow calls.
func (l *Limiter) cleanupLocked(now time.Time) {
	if now.Sub(l.lastCleanup) < cleanupInterval {
		return
	}
	l.lastCleanup = now

	cutoff := now.Add(-2 * l.window)
	for key, stamps := range l.hits {
		recent := stamps[:0]
		for _, t := range stamps {
			if t.After(cutoff) {
				recent = append(recent, t)
			}
		}
		if len(recent) == 0 {
			delete(l.hits, key)
		} else {
			l.hits[key] = recent
		}
	}
}
