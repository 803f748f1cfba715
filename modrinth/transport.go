package modrinth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Transport retry schedule. A session makes at most retryMax+1 attempts,
// backing off exponentially from retryWaitMin between them.
const (
	retryMax     = 4
	retryWaitMin = 300 * time.Millisecond
	retryWaitMax = 10 * time.Second
)

// sessionPool hands out HTTP sessions that are exclusively owned by one
// worker between acquire and release. Each session keeps a single pooled
// connection and transparently retries transient failures, so concurrent
// workers never share connection state.
type sessionPool struct {
	pool sync.Pool
}

func newSessionPool(timeout time.Duration, logger zerolog.Logger) *sessionPool {
	return &sessionPool{
		pool: sync.Pool{
			New: func() any {
				return newSession(timeout, logger)
			},
		},
	}
}

// acquire returns a session for the calling worker, creating one on first
// use. The session must not be shared and must be returned via release.
func (p *sessionPool) acquire() *retryablehttp.Client {
	return p.pool.Get().(*retryablehttp.Client)
}

func (p *sessionPool) release(c *retryablehttp.Client) {
	p.pool.Put(c)
}

// newSession builds a retrying HTTP client owning exactly one pooled
// connection.
func newSession(timeout time.Duration, logger zerolog.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = retryWaitMin
	c.RetryWaitMax = retryWaitMax
	c.CheckRetry = transientRetryPolicy
	// Hand the final response back once the retry budget is spent; the
	// request executor still classifies its status and reads its headers.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = retryLogger{logger}
	c.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        1,
			MaxIdleConnsPerHost: 1,
			MaxConnsPerHost:     1,
		},
	}
	return c
}

// transientRetryPolicy retries connection-level failures and the transient
// HTTP statuses. Other failure statuses surface immediately; the caller
// classifies them.
func transientRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}

// retryLogger adapts zerolog to retryablehttp's leveled logger interface.
type retryLogger struct {
	logger zerolog.Logger
}

func (l retryLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}
