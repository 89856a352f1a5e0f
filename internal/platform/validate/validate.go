// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used by the menu to turn raw user text into query parameters.
// The query engine itself only ever sees values that passed validation.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/movies/internal/platform/apperr"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every prompt.
type Validator struct {
	errs []apperr.FieldError
}

// Integer parses value as a base-10 integer into dst. Surrounding whitespace is
// ignored. dst is left untouched on failure.
func (v *Validator) Integer(field, value string, dst *int) *Validator {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		v.add(field, "Must be a whole number")
		return v
	}
	*dst = n
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
