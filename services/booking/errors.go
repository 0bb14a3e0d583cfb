package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no booking exists for a booking number.
var ErrNotFound = errors.New("booking not found")

// ValidationError reports a missing or malformed required field in a booking
// submission. No writes are performed when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UnknownServiceTypeError reports a service-type tag outside the fixed
// enumeration. Treated as a validation failure by the HTTP boundary.
type UnknownServiceTypeError struct {
	Tag string
}

func (e *UnknownServiceTypeError) Error() string {
	return fmt.Sprintf("unknown service type: %s", e.Tag)
}

// DetailValidationError reports a missing required section of the
// service-details payload.
type DetailValidationError struct {
	Field string
}

func (e *DetailValidationError) Error() string {
	return fmt.Sprintf("missing service details: %s", e.Field)
}

// PersistenceError wraps a store failure. The full detail is logged
// server-side; callers surface a generic message to the client.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
