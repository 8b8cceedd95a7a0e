package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnsupportedMedia   = errors.New("unsupported file type")
)

// ValidationError carries a user-correctable input problem. The reason is
// safe to show back on the submitting form.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidation builds ValidationError from a format string.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
