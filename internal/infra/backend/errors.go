package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal is returned when a request could not be built or sent.
	ErrInternal = errors.New("backend client: internal error")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("backend client: invalid response")

	ErrNotFound = errors.New("reservation not found")
)

// APIError is a non-2xx answer from the backend. Message is the server's
// {"message": ...} when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) PublicMessage() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}
