package arguments

import (
	"errors"
	"fmt"
)

// Sentinel errors for document mutation. FieldError wraps one of these.
var (
	// ErrUnknownField indicates a field path outside the fixed schema.
	ErrUnknownField = errors.New("unknown field")
	// ErrCrossStepWrite indicates a write to a field owned by a different step.
	ErrCrossStepWrite = errors.New("field is not owned by this step")
	// ErrInvalidValue indicates raw input that cannot be coerced into the field's type.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError describes a rejected write to a single document field.
type FieldError struct {
	Field Field  // Field path that was written
	Step  int    // Step that attempted the write
	Value string // Raw input as received
	Err   error  // One of the sentinel errors above
}

// Error implements the error interface
func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrCrossStepWrite):
		return fmt.Sprintf("step %d cannot write %s (owned by step %d)", e.Step, e.Field, StepOf(e.Field))
	case errors.Is(e.Err, ErrInvalidValue):
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

// Unwrap returns the underlying sentinel for errors.Is
func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(step int, field Field, value string, err error) *FieldError {
	return &FieldError{
		Field: field,
		Step:  step,
		Value: value,
		Err:   err,
	}
}

// IsFieldError reports whether err is (or wraps) a FieldError.
func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
