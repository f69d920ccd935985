// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package credential parses the identity fields a game client submits during
account registration.

Every parser runs the same two stages:

 1. Filter: drop each character outside the field's allowed ASCII class,
    keeping the order and multiplicity of the rest.
 2. Structure: apply the field's emptiness, shape and length rules to the
    filtered string, truncating values that exceed the upper bound.

The rules were worked out against the registration panel of the game client
and must match it byte for byte, otherwise accounts created here would not
line up with what the client believes it sent.

# Concurrency

All parsers are pure functions and safe for concurrent use.
*/
package credential

import (
	"errors"
	"strings"
)

// # Field Identifiers

const (
	FieldName     = "name"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// # Rejection Kinds

var (
	// ErrEmpty is returned when nothing survives the character filter.
	ErrEmpty = errors.New("empty")

	// ErrTooShort is returned when the filtered value is below the field minimum.
	ErrTooShort = errors.New("too short")

	// ErrMalformed is returned when an email fails a structural check.
	ErrMalformed = errors.New("malformed")
)

// ParseError reports which field was rejected and why.
//
// Err is always one of [ErrEmpty], [ErrTooShort] or [ErrMalformed], so callers
// branch with [errors.Is].
type ParseError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "credential: " + e.Field + " " + e.Err.Error()
}

// Unwrap exposes the rejection kind to [errors.Is].
func (e *ParseError) Unwrap() error { return e.Err }

// Code returns a machine-readable rejection code such as "TOO_SHORT".
func (e *ParseError) Code() string {
	switch {
	case errors.Is(e.Err, ErrEmpty):
		return "EMPTY"
	case errors.Is(e.Err, ErrTooShort):
		return "TOO_SHORT"
	case errors.Is(e.Err, ErrMalformed):
		return "MALFORMED"
	default:
		return "INVALID"
	}
}

func reject(field string, kind error) *ParseError {
	return &ParseError{Field: field, Err: kind}
}

// # Character Classes

func isAlphanumeric(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// allowing returns a predicate accepting ASCII alphanumerics plus the given extras.
func allowing(extra string) func(rune) bool {
	return func(r rune) bool {
		return isAlphanumeric(r) || strings.ContainsRune(extra, r)
	}
}

// filter keeps the runes of input accepted by allowed. Every accepted rune is
// ASCII, so the result can be indexed and sliced by byte.
func filter(input string, allowed func(rune) bool) string {
	var sanitized strings.Builder
	sanitized.Grow(len(input))
	for _, r := range input {
		if allowed(r) {
			sanitized.WriteRune(r)
		}
	}
	return sanitized.String()
}
