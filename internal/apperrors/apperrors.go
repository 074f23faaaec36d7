// Package apperrors defines the error taxonomy shared by the booking flow
// and the remote API client.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means no usable credential was available; the call
	// was refused before reaching the network.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyResponse means the backend answered 2xx with no usable body.
	ErrEmptyResponse = errors.New("empty response body")
)

// ValidationError reports an incomplete or inconsistent draft. It is local
// and never reaches the network.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reservation draft is missing %s", e.Field)
}

// NetworkError wraps a transport-level failure (dial, timeout, broken
// connection).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries a non-2xx status together with the raw body for
// diagnostics.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the user can retry the same request unchanged.
// Validation and auth failures are terminal; transport and server failures
// are not.
func Retryable(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) || errors.Is(err, ErrAuthRequired) {
		return false
	}
	return true
}
