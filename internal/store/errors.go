package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a supplied foreign id does not resolve.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConflict is returned when an operation collides with existing state,
	// such as a duplicate tag name or a no-op revert.
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("invalid input")
)

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
