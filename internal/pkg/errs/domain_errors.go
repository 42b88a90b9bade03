package errs

import "errors"

// Domain-specific sentinel errors shared across the calendar layers
var (
	// Editor errors
	ErrEditorAlreadyOpen = errors.New("editor already open")
	ErrEditorClosed      = errors.New("editor closed")
	ErrDraftModeMismatch = errors.New("draft does not match editor mode")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Remote errors
	ErrBackendUnavailable = errors.New("backend unavailable")
)
