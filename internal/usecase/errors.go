package usecase

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error a use case reports for a business reason wraps
// exactly one of these, so callers can classify it with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrInvalidArgument     = errors.New("invalid argument")
)

// Error is a classified failure with a message fit for the caller.
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// IsKnown reports whether err carries one of the failure kinds above.
func IsKnown(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}
