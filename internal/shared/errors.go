package shared

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates rejected input.
	ErrValidation = errors.New("validation failed")
	// ErrReference indicates a supplier or product reference that does not resolve.
	// It is reported as a validation failure.
	ErrReference = errors.New("unresolved reference")
	// ErrUnavailable indicates the store could not be reached. Callers may retry.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrDuplicate indicates a request that was already processed.
	ErrDuplicate = errors.New("duplicate request")
)

// FieldError names an offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field level failures for a single input.
type ValidationError struct {
	Fields    []FieldError
	reference bool
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidation, and ErrReference for reference failures.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return target == ErrReference && e.reference
}

// Add appends a field failure.
func (e *ValidationError) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a single-field validation error.
func Invalid(field, format string, args ...any) error {
	v := &ValidationError{}
	v.Add(field, format, args...)
	return v
}

// UnresolvedReference reports a reference field that points at nothing.
func UnresolvedReference(field, id string) error {
	v := &ValidationError{reference: true}
	v.Add(field, "%s does not exist", id)
	return v
}

// FieldsOf extracts field failures from err, if any.
func FieldsOf(err error) []FieldError {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}

// Unavailable wraps a backend failure so callers can tell it apart from bad input.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
