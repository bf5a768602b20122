package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller's role or department does not permit the action.
var ErrForbidden = errors.New("action not permitted")

// ErrInvalidState indicates a state-machine precondition failed, e.g. resolving an
// already-resolved request. Signals a stale client view; the caller should refresh.
var ErrInvalidState = errors.New("invalid state for requested transition")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates the underlying store was unreachable or failed.
var ErrPersistence = errors.New("persistence failure")

// FieldError is a validation error addressable to a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes FieldError match ErrValidation under errors.Is.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a validation error for the given field.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// FieldFromError extracts the failing field name if err carries one.
func FieldFromError(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
