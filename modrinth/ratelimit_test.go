package modrinth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateHeaders(limit, remaining, reset string) http.Header {
	h := http.Header{}
	if limit != "" {
		h.Set(headerRateLimit, limit)
	}
	if remaining != "" {
		h.Set(headerRateRemaining, remaining)
	}
	if reset != "" {
		h.Set(headerRateReset, reset)
	}
	return h
}

func TestObserveUpdatesState(t *testing.T) {
	r := newRateLimits(zerolog.Nop())

	r.observe(rateHeaders("300", "120", "42"))

	info := r.snapshot()
	assert.Equal(t, 300, info.Limit)
	assert.Equal(t, 120, info.Remaining)
	assert.Equal(t, 42*time.Second, info.Reset)
}

func TestObserveKeepsLastValuesOnBadHeaders(t *testing.T) {
	tests := []struct {
		name          string
		headers       http.Header
		wantLimit     int
		wantRemaining int
		wantReset     time.Duration
	}{
		{
			name:          "missing headers",
			headers:       http.Header{},
			wantLimit:     250,
			wantRemaining: 99,
			wantReset:     0,
		},
		{
			name:          "garbage values",
			headers:       rateHeaders("many", "few", "soon"),
			wantLimit:     250,
			wantRemaining: 99,
			wantReset:     0,
		},
		{
			// One malformed header discards the whole update, including the
			// siblings that would have parsed.
			name:          "partial garbage",
			headers:       rateHeaders("300", "not-a-number", "5"),
			wantLimit:     250,
			wantRemaining: 99,
			wantReset:     0,
		},
		{
			name:          "absent headers fall back individually",
			headers:       rateHeaders("280", "", "5"),
			wantLimit:     280,
			wantRemaining: 99,
			wantReset:     5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRateLimits(zerolog.Nop())
			r.observe(rateHeaders("250", "99", "40"))

			r.observe(tt.headers)

			info := r.snapshot()
			assert.Equal(t, tt.wantLimit, info.Limit)
			assert.Equal(t, tt.wantRemaining, info.Remaining)
			assert.Equal(t, tt.wantReset, info.Reset)
		})
	}
}

func TestWaitDoesNotBlockWithRemainingQuota(t *testing.T) {
	r := newRateLimits(zerolog.Nop())
	r.observe(rateHeaders("300", "2", "55"))

	start := time.Now()
	require.NoError(t, r.wait(context.Background()))
	require.NoError(t, r.wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitBlocksOnceWhenExhausted(t *testing.T) {
	r := newRateLimits(zerolog.Nop())
	r.observe(rateHeaders("300", "0", "1"))

	start := time.Now()
	require.NoError(t, r.wait(context.Background()))
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond, "first waiter should sleep out the window")

	// The tracker reset optimistically before sleeping, so the next caller
	// proceeds immediately.
	info := r.snapshot()
	assert.Equal(t, 300, info.Remaining)
	assert.Equal(t, time.Duration(0), info.Reset)

	start = time.Now()
	require.NoError(t, r.wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	r := newRateLimits(zerolog.Nop())
	r.observe(rateHeaders("300", "0", "30"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitConcurrentCallersSleepAtMostOnce(t *testing.T) {
	r := newRateLimits(zerolog.Nop())
	r.observe(rateHeaders("300", "0", "1"))

	done := make(chan time.Duration, 3)
	for range 3 {
		go func() {
			start := time.Now()
			_ = r.wait(context.Background())
			done <- time.Since(start)
		}()
	}

	var slept int
	for range 3 {
		if d := <-done; d > 500*time.Millisecond {
			slept++
		}
	}
	assert.Equal(t, 1, slept, "only the caller that observed exhaustion should sleep")
}
