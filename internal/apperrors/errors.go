package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the operation targeted a record id that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means the store rejected a write because of a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// FieldError reports a problem with one field of an incoming payload.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError rejects a payload before any side effect happens.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Required builds a ValidationError listing every missing field.
func Required(fields ...string) *ValidationError {
	ferrs := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		ferrs = append(ferrs, FieldError{Field: f, Error: "this field is required"})
	}
	return &ValidationError{Fields: ferrs}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
