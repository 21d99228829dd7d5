package wavefront

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the envelope status of a non-2xx API response.
type APIError struct {
	Status Status
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status.Message == "" {
		return fmt.Sprintf("%s (code: %d)", e.Status.Result, e.Status.Code)
	}

	return fmt.Sprintf("%s: %s (code: %d)", e.Status.Result, e.Status.Message, e.Status.Code)
}

// Static errors for err113 compliance.
var (
	ErrValueAbsent          = errors.New("value is absent")
	ErrBodyNotMapping       = errors.New("request body must be a JSON object")
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("API endpoint is required")
	ErrTokenRequired        = errors.New("API token is required")
	ErrCredentialsNotFound  = errors.New("no credentials found")
	ErrExecutorRequired     = errors.New("executor is required")
	ErrRequestRequired      = errors.New("page request is required")
	ErrQueryRequired        = errors.New("query expression is required")
	ErrSearchEntityRequired = errors.New("search entity is required")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrCacheMiss            = errors.New("cache miss")
	ErrCacheEntryTooLarge   = errors.New("cache entry exceeds maximum size")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status.Code == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status.Code == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status.Code == http.StatusForbidden
	}

	return false
}
