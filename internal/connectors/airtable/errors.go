package airtable

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// maxErrorBody bounds the response text kept on an APIError.
const maxErrorBody = 512

// APIError represents a non-2xx response from the record service.
// Body is kept for diagnostics and must not be shown to end users.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable: API error %d %s: %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// RateLimitError is returned when the service answers 429.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        *APIError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("airtable: rate limit exceeded, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates an unknown base or table.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates a missing or invalid key.
func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error indicates the key lacks access.
func IsForbidden(err error) bool {
	return statusCode(err) == http.StatusForbidden
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsRetryable reports whether a request that failed with err may succeed
// when repeated: rate limiting, server errors and transport failures.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if IsRateLimited(err) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// TransportError wraps a failure to reach the service at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("airtable: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func statusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}
