package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"campaignhub/internal/domain"
)

// TransportError wraps a failure to complete the HTTP exchange at all.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is maps 404 onto domain.ErrNotFound and 401/403 onto domain.ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// DecodeError means the backend answered 2xx with a body that does not match
// the expected record shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gateway: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message returns the text shown to staff for err: the backend's own message
// for API errors, the wrapped error otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return "network error: " + transportErr.Err.Error()
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return "unexpected response: " + decodeErr.Err.Error()
	}
	return err.Error()
}
