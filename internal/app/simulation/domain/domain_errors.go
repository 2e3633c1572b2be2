package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// ErrInvalidInput is the only failure mode of the engine. Every validation
	// failure wraps it through a *ValidationError naming the offending field.
	ErrInvalidInput = errors.New("invalid input")

	// History errors
	ErrSimulationNotFound = errors.New("simulation not found")
	ErrHistoryDisabled    = errors.New("simulation history is disabled")

	// Policy errors
	ErrInvalidPolicy = errors.New("invalid risk policy")
)

// ValidationError describes a rejected DiscountRequest field.
// Field uses the wire name (e.g. "discountPercent") so callers can surface it as is.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidField extracts the violated field name from err, if any.
func InvalidField(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field, true
	}
	return "", false
}
