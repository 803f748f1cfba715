package modrinth

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Rate limit headers returned by the Modrinth API on every response,
// success or failure.
const (
	headerRateLimit     = "X-Ratelimit-Limit"
	headerRateRemaining = "X-Ratelimit-Remaining"
	headerRateReset     = "X-Ratelimit-Reset"
)

// defaultRateLimit is the documented per-minute quota, assumed until the
// first response tells us otherwise.
const defaultRateLimit = 300

// RateLimitInfo is a point-in-time snapshot of the tracked quota.
type RateLimitInfo struct {
	Limit       int
	Remaining   int
	Reset       time.Duration
	LastChecked time.Time
}

// rateLimits tracks the request quota advertised by response headers.
//
// All state lives behind one mutex, held only for bookkeeping. The lock is
// never held across a sleep or a network call; a sleeping waiter would
// otherwise serialize every concurrent worker behind it.
type rateLimits struct {
	mu          sync.Mutex
	limit       int
	remaining   int
	reset       time.Duration
	lastChecked time.Time
	logger      zerolog.Logger
}

func newRateLimits(logger zerolog.Logger) *rateLimits {
	return &rateLimits{
		limit:       defaultRateLimit,
		remaining:   defaultRateLimit,
		lastChecked: time.Now(),
		logger:      logger,
	}
}

// observe updates the tracked quota from a response's headers. Absent
// headers fall back to the last known limit and remaining (reset falls
// back to zero); one malformed header discards the whole update, since a
// partially applied triple could mis-state the quota. Header parsing is
// never allowed to fail the request path.
func (r *rateLimits) observe(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit, limitErr := intHeader(h, headerRateLimit, r.limit)
	remaining, remainingErr := intHeader(h, headerRateRemaining, r.remaining)
	reset, resetErr := intHeader(h, headerRateReset, 0)
	if limitErr != nil || remainingErr != nil || resetErr != nil {
		limit, remaining, reset = r.limit, r.remaining, 0
	}

	r.limit = limit
	r.remaining = remaining
	r.reset = time.Duration(reset) * time.Second
	r.lastChecked = time.Now()

	r.logger.Debug().
		Int("limit", r.limit).
		Int("remaining", r.remaining).
		Dur("reset", r.reset).
		Msg("Updated rate limit state")
}

// wait blocks until it is safe to issue the next request. When the quota is
// exhausted it optimistically resets the tracked state before sleeping, so
// workers queued behind the lock do not also sleep once the window has
// logically rolled over. The estimate can drift from the server's clock;
// the transport's 429 retry is the second line of defense.
func (r *rateLimits) wait(ctx context.Context) error {
	r.mu.Lock()
	if r.remaining > 0 {
		r.mu.Unlock()
		return nil
	}

	sleep := r.reset
	r.remaining = r.limit
	r.reset = 0
	r.mu.Unlock()

	if sleep <= 0 {
		return nil
	}

	r.logger.Warn().Dur("sleep", sleep).Msg("Rate limit exhausted, waiting for window reset")

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// snapshot returns a copy of the current state.
func (r *rateLimits) snapshot() RateLimitInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RateLimitInfo{
		Limit:       r.limit,
		Remaining:   r.remaining,
		Reset:       r.reset,
		LastChecked: r.lastChecked,
	}
}

// intHeader parses an integer header value. An absent header yields the
// fallback; a present but malformed value is an error.
func intHeader(h http.Header, key string, fallback int) (int, error) {
	raw := h.Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
