// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// rejections before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer. Parsers report the
// first problem of one field; the Validator gathers the problems of every
// field so the client sees them all at once.
package validate

import (
	"errors"

	"github.com/taibuivan/gdps/internal/platform/apperr"
)

// codeDefault is used when a rejection carries no code of its own.
const codeDefault = "INVALID"

// coder is implemented by rejections that carry a machine-readable code,
// such as credential.ParseError.
type coder interface {
	Code() string
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	errs []apperr.FieldError
}

// Field records err against field. A nil err records nothing, so parser
// results can be passed straight through.
func (v *Validator) Field(field string, err error) *Validator {
	if err == nil {
		return v
	}

	code := codeDefault
	var c coder
	if errors.As(err, &c) {
		code = c.Code()
	}

	v.errs = append(v.errs, apperr.FieldError{Field: field, Code: code, Message: err.Error()})
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("id", id == 0, "Must be non-zero")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Code: codeDefault, Message: message})
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
