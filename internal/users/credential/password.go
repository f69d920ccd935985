// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credential

import (
	"log/slog"
)

const (
	PasswordMinLen = 6
	PasswordMaxLen = 19

	passwordSpecialChars = "-_"
	redacted             = "[REDACTED]"
)

var passwordAllowed = allowing(passwordSpecialChars)

// Password is a validated plaintext password.
//
// # Security
//
// The plaintext is held in a private buffer that [Password.Wipe] zeroes once
// the verifier has been derived. Every formatting, logging and encoding path
// prints a redacted placeholder; only [Password.Plaintext] reveals the value.
type Password struct {
	plaintext []byte
}

// ParsePassword sanitizes raw to ASCII alphanumerics, '-' and '_' and applies
// the length rules. Values longer than [PasswordMaxLen] are truncated.
func ParsePassword(raw string) (Password, error) {
	sanitized := make([]byte, 0, len(raw))
	for _, r := range raw {
		if passwordAllowed(r) {
			sanitized = append(sanitized, byte(r))
		}
	}

	if len(sanitized) == 0 {
		return Password{}, reject(FieldPassword, ErrEmpty)
	}

	if len(sanitized) < PasswordMinLen {
		clear(sanitized)
		return Password{}, reject(FieldPassword, ErrTooShort)
	}

	if len(sanitized) > PasswordMaxLen {
		sanitized = sanitized[:PasswordMaxLen]
	}

	return Password{plaintext: sanitized}, nil
}

// Plaintext returns the sanitized password. Never log or persist it.
func (p Password) Plaintext() string { return string(p.plaintext) }

// Len returns the length of the sanitized password.
func (p Password) Len() int { return len(p.plaintext) }

// Wipe zeroes the backing buffer, including bytes dropped by truncation.
// Copies of p share the buffer and are wiped too.
func (p Password) Wipe() {
	clear(p.plaintext[:cap(p.plaintext)])
}

// # Redaction

// String implements [fmt.Stringer].
func (p Password) String() string { return redacted }

// GoString implements [fmt.GoStringer] so %#v does not leak the buffer.
func (p Password) GoString() string { return "credential.Password(" + redacted + ")" }

// LogValue implements [slog.LogValuer].
func (p Password) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText implements [encoding.TextMarshaler].
func (p Password) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// MarshalJSON implements [json.Marshaler].
func (p Password) MarshalJSON() ([]byte, error) { return []byte(`"` + redacted + `"`), nil }
