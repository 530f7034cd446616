package project

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure modes of projection and serialization.
// Every failure is fatal: these are either data-integrity problems that must
// be fixed in the workspace or environment problems that must be fixed by the
// user, so nothing here is ever retried.
const (
	// ErrCodeUnknownPackage means the selected root package id (or a
	// dependency edge target) does not exist in the supplied graph.
	ErrCodeUnknownPackage Code = "UNKNOWN_PACKAGE"

	// ErrCodeMissingSourceRoot means a reachable package declares no source
	// directories, so no crate can be projected for it.
	ErrCodeMissingSourceRoot Code = "MISSING_SOURCE_ROOT"

	// ErrCodeDuplicateCrateName means two distinct reachable packages share a
	// crate name. cairo_project.toml keys crates by name alone, so the
	// collision cannot be represented and is never silently resolved.
	ErrCodeDuplicateCrateName Code = "DUPLICATE_CRATE_NAME"

	// ErrCodeInvalidCrateName means a package name is not a valid Cairo
	// identifier and therefore cannot appear as a crate_roots key.
	ErrCodeInvalidCrateName Code = "INVALID_CRATE_NAME"

	// ErrCodePathResolution means a source root could not be expressed in
	// terms of the output location due to a filesystem error. A merely
	// missing common ancestor is not an error; it falls back to an absolute
	// path.
	ErrCodePathResolution Code = "PATH_RESOLUTION_FAILURE"

	// ErrCodeSinkWrite means the output location could not be written.
	// No partial file is left behind.
	ErrCodeSinkWrite Code = "SINK_WRITE_FAILURE"
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

// NewError creates a new Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a new Error wrapping an existing error.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func IsCode(err error, code Code) bool {
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
