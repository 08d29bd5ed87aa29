package writer

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced writer id or email resolves to
// nothing.
var ErrNotFound = errors.New("writer record not found")

// ValidationError reports malformed or conflicting input. It always fires
// before any mutation, so callers can report it and retry safely.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidArgumentError reports a wrong type or shape handed to an internal
// operation. Treated as a programming error and propagated, never swallowed.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}
