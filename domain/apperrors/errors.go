package apperrors

import (
	"errors"
	"fmt"
)

// Business outcomes. Services return these sentinels (possibly wrapped) and
// handlers map them to transport responses with errors.Is.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskExists    = errors.New("task with this ID already exists")
	ErrForbidden     = errors.New("permission denied")
	ErrInvalidCursor = errors.New("invalid pagination token")
)

// Store faults. Both are retried by the store adapter before they surface;
// by the time a caller sees one, retries are exhausted.
var (
	ErrStoreThrottled   = errors.New("store capacity exceeded")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the reason a payload was rejected. It is never
// retried and maps to a client error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
