// Package errors provides structured error types for locusmap.
//
// Every failure that can abort a plot carries a machine-readable [Code] so the
// CLI can tell a missing input table apart from a dangling reference or a
// broken resource directory.
//
// # Error Codes
//
//   - MISSING_TABLE: an expected input table is absent
//   - LOOKUP_MISS: a referenced gene position, array, operon or contig is absent
//   - CONFIGURATION: a required resource or option is missing or invalid
//   - INVALID_INPUT: a table cell could not be interpreted
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLookupMiss, "array %q not found", id)
//	if errors.Is(err, errors.ErrCodeLookupMiss) {
//	    // report the missing key
//	}
//
//	err := errors.Wrap(errors.ErrCodeConfiguration, origErr, "load font %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMissingTable Code = "MISSING_TABLE"
	ErrCodeLookupMiss   Code = "LOOKUP_MISS"
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Setup errors
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// UserMessage returns the message without the code prefix for *Error values,
// and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// LookupError names the table and key of a reference that could not be resolved.
type LookupError struct {
	Table string // Source table, e.g. "genes" or "crisprs"
	Key   string // Missing key, e.g. "contig1:12"
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no entry for %s", e.Table, e.Key)
}

// Missing builds a LOOKUP_MISS error wrapping a *LookupError for table and key.
func Missing(table, key string) *Error {
	return Wrap(ErrCodeLookupMiss, &LookupError{Table: table, Key: key}, "unresolved reference")
}
