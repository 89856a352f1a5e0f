// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the movies CLI.

It provides a rich error type that separates low-level causes (strconv, os, bufio)
from the message shown to the user at the terminal.

Taxonomy:

  - PARSE_ERROR: a malformed row in the source file. Fatal.
  - IO_ERROR: the source file is missing or unreadable. Fatal.
  - USAGE_ERROR: the program was started without a file to process. Fatal.
  - VALIDATION_ERROR: bad user input to a query. Local; the session continues.

Every error that leaves a package boundary should be an [AppError] so that the
entry point can decide between aborting and reporting.
*/
package apperr

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeParse      = "PARSE_ERROR"
	CodeIO         = "IO_ERROR"
	CodeUsage      = "USAGE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

// AppError is the canonical error type.
//
// It carries a machine-readable code, a user-facing message, and an optional
// slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "PARSE_ERROR").
	Code string
	// Message is a human-readable description safe to print to the user.
	Message string
	// Line is the 1-based source line the error refers to, or 0.
	Line int
	// Cause is the underlying error, used for logging.
	Cause error
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the input that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Fatal reports whether the error must abort the run.
func (e *AppError) Fatal() bool {
	return e.Code != CodeValidation
}

// AtLine returns a copy of e that refers to the given source line.
func (e *AppError) AtLine(line int) *AppError {
	c := *e
	c.Line = line
	return &c
}

// # Constructors

// Parse creates a PARSE_ERROR for a malformed source row.
//
// Example:
//
//	apperr.Parse("invalid year \"20x1\"", err)
func Parse(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeParse,
		Message: msg,
		Cause:   cause,
	}
}

// IO creates an IO_ERROR for a file that cannot be opened or read.
func IO(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeIO,
		Message: msg,
		Cause:   cause,
	}
}

// Usage creates a USAGE_ERROR.
func Usage(msg string) *AppError {
	return &AppError{
		Code:    CodeUsage,
		Message: msg,
	}
}

// ValidationError creates a VALIDATION_ERROR with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsFatal reports whether err must end the run. Errors that are not an
// [*AppError] are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if ae := As(err); ae != nil {
		return ae.Fatal()
	}
	return true
}
