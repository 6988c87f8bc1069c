package spotify

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Spotify Web API.
//
// The APIError type provides structured error information including
// the HTTP status code and the message returned by the API. It
// implements error and supports errors.Is comparison by status code.
type APIError struct {
	StatusCode int    // HTTP status code of the failed request
	Message    string // Error message from the API
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("spotify: error %d: %s", e.StatusCode, e.Message)
}

// Is checks if the target error is a Spotify API error with the same status.
//
// This allows errors.Is() to work with *APIError types.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// NotFound returns true if the error reports a missing resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// newAPIError builds an APIError from a non-2xx response body.
//
// The Web API reports errors as {"error": {"status": ..., "message": ...}};
// when the body does not match that shape the HTTP status text is used.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}

	var wire struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error.Message != "" {
		apiErr.Message = wire.Error.Message
	}

	return apiErr
}

// AuthError represents a failed client-credentials exchange.
//
// Authentication failures are fatal to the session: no catalog operation
// is possible without a bearer token.
type AuthError struct {
	StatusCode  int    // HTTP status code, 0 when the request never completed
	Code        string // OAuth error code, e.g. "invalid_client"
	Description string // Human-readable description
}

// Error returns the error message.
func (e *AuthError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("spotify: authentication failed: %s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("spotify: authentication failed: %s", e.Description)
}

// Predefined errors for common cases.
var (
	// ErrMissingCredentials is returned when the client ID or secret
	// is absent from the configuration.
	ErrMissingCredentials = fmt.Errorf("spotify: client ID and client secret are required")

	// ErrNoMorePages is returned by Pager.Next after the final page has
	// been consumed.
	ErrNoMorePages = fmt.Errorf("spotify: no more pages")
)
