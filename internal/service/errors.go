package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the caller-facing failure taxonomy. Handlers map
// these to HTTP status codes; everything else is an internal failure.
var (
	// ErrValidation marks a rejected operation; the stored collection is
	// left unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation referencing an entity that is not
	// in the collection. The operation is a no-op, but callers must not
	// assume silent success.
	ErrNotFound = errors.New("not found")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErr(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}
