// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credential

import "strings"

const (
	EmailMinLen = 4
	EmailMaxLen = 49

	emailSpecialChars = "-_@."
)

var emailAllowed = allowing(emailSpecialChars)

// Email is a validated email address.
type Email struct {
	value string
}

/*
ParseEmail sanitizes raw to ASCII alphanumerics and "-_@." and then applies
the structural rules in order. The first failing rule decides the error:

 1. nothing left after filtering: [ErrEmpty]
 2. no '@', or the last '@' opens the string: [ErrMalformed]
 3. no '.' at or after the last '@', or that '.' ends the string: [ErrMalformed]
 4. everything before the last '@' is a digit: [ErrMalformed]
 5. the first character is not a letter: [ErrMalformed]
 6. shorter than [EmailMinLen]: [ErrTooShort]

Values longer than [EmailMaxLen] are truncated.
*/
func ParseEmail(raw string) (Email, error) {
	sanitized := filter(raw, emailAllowed)

	if sanitized == "" {
		return Email{}, reject(FieldEmail, ErrEmpty)
	}

	at := strings.LastIndexByte(sanitized, '@')
	if at <= 0 {
		return Email{}, reject(FieldEmail, ErrMalformed)
	}

	dot := strings.LastIndexByte(sanitized[at:], '.')
	if dot < 0 {
		return Email{}, reject(FieldEmail, ErrMalformed)
	}
	dot += at

	if dot == len(sanitized)-1 {
		return Email{}, reject(FieldEmail, ErrMalformed)
	}

	if allDigits(sanitized[:at]) {
		return Email{}, reject(FieldEmail, ErrMalformed)
	}

	if !isAlpha(sanitized[0]) {
		return Email{}, reject(FieldEmail, ErrMalformed)
	}

	// Unreachable after the structural checks above, kept so the length
	// bounds hold on their own.
	if len(sanitized) < EmailMinLen {
		return Email{}, reject(FieldEmail, ErrTooShort)
	}

	if len(sanitized) > EmailMaxLen {
		return Email{value: sanitized[:EmailMaxLen]}, nil
	}

	return Email{value: sanitized}, nil
}

// String returns the canonical address.
func (e Email) String() string { return e.value }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
