package twitch

import (
	"errors"
	"fmt"
)

// Helix-specific errors.
var (
	// ErrUserNotFound indicates the channel login matched no user.
	ErrUserNotFound = errors.New("twitch: user not found")
)

// APIError represents a Helix API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitch: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsUnauthorized checks if the error indicates an authentication failure.
// A 401 means the bearer token is invalid for every subsequent request,
// so callers treat it as fatal.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrUserNotFound)
}
