package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced booking, slot or interpreter does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized means the record exists but the actor does not own it.
	// Kept distinct from ErrNotFound so handlers can answer 403 vs 404.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrConflict means the operation collides with existing state, e.g. a
	// booking window overlapping an already accepted booking.
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition means the requested booking status change is not
	// allowed from the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
