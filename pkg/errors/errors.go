// Package errors provides structured error types for treeflow.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so callers (CLI, tests, embedding applications) can branch on the
// category without matching message strings.
//
// # Error Codes
//
//   - INVALID_INPUT: the input is not a tree (cycle, shared node, nil root)
//   - INVALID_SPACING: sibling or parent-child spacing is not a positive number
//   - INVALID_FORMAT / INVALID_ENGINE / INVALID_OPTIONS: rejected render options
//   - INTERNAL_ERROR: unexpected failures in a renderer backend
//
// An unrecognized flow direction is deliberately NOT an error; see
// package direction for the fallback.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "node %q has two parents", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle malformed tree
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidSpacing Code = "INVALID_SPACING"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidEngine  Code = "INVALID_ENGINE"
	ErrCodeInvalidOptions Code = "INVALID_OPTIONS"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalidInput reports whether err signals a non-tree input.
func IsInvalidInput(err error) bool { return Is(err, ErrCodeInvalidInput) }

// IsInvalidSpacing reports whether err signals a rejected spacing configuration.
func IsInvalidSpacing(err error) bool { return Is(err, ErrCodeInvalidSpacing) }
