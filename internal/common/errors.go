// Package common defines the error kinds shared by every kcc layer.
// Callers should use errors.Is to match the sentinel values and errors.As to
// inspect a *ValidationError.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a malformed name, message or query.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a missing topic, user or host.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an attempt to create something that already exists.
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized marks an operation by someone other than the owner.
	ErrUnauthorized = errors.New("not authorized")

	// ErrConfiguration marks a host no backend can serve.
	ErrConfiguration = errors.New("configuration error")
)

// ValidationError carries the offending value and the rule it violates.
type ValidationError struct {
	Field string
	Value string
	Rule  string
}

func NewValidationError(field, value, rule string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Rule: rule}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is not valid: %s", e.Field, e.Rule)
	}
	return fmt.Sprintf("%s '%s' is not valid: %s", e.Field, e.Value, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
