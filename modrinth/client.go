package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Modrinth API endpoint.
const DefaultBaseURL = "https://api.modrinth.com"

const defaultTimeout = 60 * time.Second

// Client is a Modrinth API client. It is safe for concurrent use: the
// rate-limit tracker is the only shared mutable state and every mutation
// of it happens under its lock, while HTTP sessions are checked out
// exclusively per request.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	timeout   time.Duration
	logger    zerolog.Logger
	limits    *rateLimits
	sessions  *sessionPool
	pacer     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-attempt HTTP timeout. The effective worst-case
// duration of one request is this timeout times the transport's retry
// budget, plus backoff.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithPacer installs a client-side token bucket that smooths request
// bursts below the server's window. This is an additional local brake; the
// header-driven tracker remains the authoritative backpressure mechanism.
func WithPacer(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.pacer = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// NewClient creates a new Modrinth client
func NewClient(baseURL, token, userAgent string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if userAgent == "" {
		return nil, ErrMissingUserAgent
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Ensure baseURL doesn't have trailing slash
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	client := &Client{
		baseURL:   baseURL,
		token:     token,
		userAgent: userAgent,
		timeout:   defaultTimeout,
		logger:    logger,
		limits:    newRateLimits(logger),
	}

	for _, opt := range opts {
		opt(client)
	}
	client.sessions = newSessionPool(client.timeout, logger)

	return client, nil
}

// RateLimit returns the most recently observed rate limit state.
func (c *Client) RateLimit() RateLimitInfo {
	return c.limits.snapshot()
}

// requestOptions carries the optional parts of a request. At most one of
// jsonBody and rawBody may be set.
type requestOptions struct {
	query       url.Values
	jsonBody    any
	rawBody     []byte
	contentType string
}

// do is the single chokepoint for every remote call. It composes the URL,
// waits for rate-limit capacity, dispatches through a worker-exclusive
// session, records the rate-limit headers of every response, and
// classifies failure statuses into *APIError. Errors that are not an API
// rejection (connection failure, timeout after the retry budget) come back
// as plain wrapped errors so callers can tell "rejected" from
// "unreachable".
func (c *Client) do(ctx context.Context, method, path string, apiVersion int, opts requestOptions) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v%d%s", c.baseURL, apiVersion, path)
	if len(opts.query) > 0 {
		endpoint += "?" + opts.query.Encode()
	}

	var body []byte
	contentType := opts.contentType
	switch {
	case opts.jsonBody != nil:
		encoded, err := json.Marshal(opts.jsonBody)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = encoded
		contentType = "application/json"
	case opts.rawBody != nil:
		body = opts.rawBody
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if err := c.limits.wait(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("method", method).Str("url", endpoint).Msg("Sending Modrinth API request")

	session := c.sessions.acquire()
	resp, err := session.Do(req)
	c.sessions.release(session)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Rate limit headers are present on both success and failure responses.
	c.limits.observe(resp.Header)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.apiError(method, path, resp.StatusCode, respBody)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Int("length", len(respBody)).
		Msg("Modrinth API request succeeded")

	return respBody, nil
}

// doJSON performs a request and decodes the JSON response into out. A nil
// out or an empty response body (204-style responses) skips decoding.
func (c *Client) doJSON(ctx context.Context, method, path string, apiVersion int, opts requestOptions, out any) error {
	body, err := c.do(ctx, method, path, apiVersion, opts)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// apiError builds the typed error for a failure status, preferring the
// structured error body and falling back to the raw text.
func (c *Client) apiError(method, path string, status int, body []byte) *APIError {
	parsed := map[string]any{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = map[string]any{"error": string(body)}
	}

	c.logger.Error().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Msg("Modrinth API request failed")

	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("%s %s failed with status %d", method, path, status),
		Body:       parsed,
	}
}
