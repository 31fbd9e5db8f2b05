package tabular

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that an input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrParse indicates that a file could not be decoded or parsed as delimited text.
	ErrParse = errors.New("parse error")
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("CSV file not found: %s", e.Path)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError reports a file that exists but is not well-formed for the
// requested encoding. Line is zero when the failure is not tied to a line.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
