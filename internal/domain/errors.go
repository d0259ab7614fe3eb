package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a lookup matches no event.
	ErrNotFound = errors.New("event not found")
	// ErrDuplicateSlug is returned when a create collides with an
	// existing slug via the unique index.
	ErrDuplicateSlug = errors.New("an event with this slug already exists")
	// ErrUpload is returned when the media host rejects or fails an upload.
	ErrUpload = errors.New("media upload failed")
	// ErrInvalidFormat is wrapped by normalization failures for
	// unparseable date or time input.
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level validation failures for one event.
type ValidationError struct {
	Fields []FieldError
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the error contains a failure for the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func invalidFormatf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, args...))
}
