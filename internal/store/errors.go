package store

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches any failure to decode an existing store file
	ErrParse = errors.New("store file is malformed")

	// ErrWrite matches any failure to persist the store file
	ErrWrite = errors.New("store file could not be written")
)

// ParseError reports a store file that exists but is not valid JSON or does
// not have the expected shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse store file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IsParseError reports whether err was caused by a malformed store file
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
