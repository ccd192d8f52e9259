package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases. Use errors.Is() to check against these.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrServer         = errors.New("server error")
)

// APIError is the structured form of a non-2xx response from the storefront
// API. Implements error and supports unwrapping to a sentinel.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// errorBody mirrors the loose error payloads the API returns. Handlers fill
// in details, error, or message depending on the route; preference runs
// details, then error, then message, then a generic fallback.
type errorBody struct {
	Details string `json:"details"`
	ErrMsg  string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) best() string {
	switch {
	case b.Details != "":
		return b.Details
	case b.ErrMsg != "":
		return b.ErrMsg
	default:
		return b.Message
	}
}

func sentinelFor(status int) error {
	switch {
	case status == 404:
		return ErrNotFound
	case status == 401 || status == 403:
		return ErrUnauthorized
	case status >= 500:
		return ErrServer
	default:
		return ErrInvalidRequest
	}
}

// newAPIError builds an APIError from a status code and decoded body.
func newAPIError(status int, body errorBody) *APIError {
	return &APIError{
		StatusCode: status,
		Message:    body.best(),
		Err:        sentinelFor(status),
	}
}
