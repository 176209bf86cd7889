package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrState         = errors.New("invalid survey state")
	ErrPersistence   = errors.New("persistence failure")
)

// State reasons. Each one wraps ErrState.
var (
	ErrSurveyClosed   = &StateError{Reason: "closed"}
	ErrSurveyExpired  = &StateError{Reason: "expired"}
	ErrSurveyNoTopics = &StateError{Reason: "no_topics"}
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateError reports that a survey is not accepting the requested operation.
// Values are compared by reason, so errors.Is(err, ErrSurveyClosed) works on
// any StateError with the same reason.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return "survey " + strings.ReplaceAll(e.Reason, "_", " ") }

func (e *StateError) Unwrap() error { return ErrState }

func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	return ok && t.Reason == e.Reason
}

// PersistenceError wraps a storage failure that aborted a write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// NewPersistenceError wraps err unless it is nil or already a domain error
// that callers branch on.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
