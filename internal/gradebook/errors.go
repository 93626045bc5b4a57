package gradebook

import (
	"errors"
	"strings"
)

// ErrSubjectNotFound is returned when a command references an unknown subject
var ErrSubjectNotFound = errors.New("subject not found")

// ErrNoChange is returned when a command does not touch any subject
var ErrNoChange = errors.New("command changed nothing")

// FieldError is used to indicate an error with a specific command field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports user input rejected at the boundary
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// IsValidationError reports whether err was caused by rejected user input
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
