package modrinth

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Modrinth client.
var (
	// ErrMissingToken indicates no API token was provided.
	ErrMissingToken = errors.New("modrinth API token is required")

	// ErrMissingUserAgent indicates no User-Agent was provided. Modrinth
	// rejects requests without one that identifies the operator.
	ErrMissingUserAgent = errors.New("user agent identifying the operator is required")
)

// APIError represents a failure response from the Modrinth API. It is
// created only at the request boundary; any other error coming out of the
// client means the request could not be completed at all (connection
// failure, timeout after retries) rather than the API rejecting it.
type APIError struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("modrinth API error: status %d: %s", e.StatusCode, e.Message)
}

// Description returns the human-readable error description from the
// response body, if the API provided one.
func (e *APIError) Description() string {
	if e.Body == nil {
		return ""
	}
	if desc, ok := e.Body["description"].(string); ok {
		return desc
	}
	if desc, ok := e.Body["error"].(string); ok {
		return desc
	}
	return ""
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsInvalid checks if the error indicates the request failed validation
func (e *APIError) IsInvalid() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

// IsRateLimited checks if the error indicates the rate limit was exhausted
// even after the transport's retry budget.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsAPIError unwraps err into an *APIError, or returns nil if the error
// is not an API rejection.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
