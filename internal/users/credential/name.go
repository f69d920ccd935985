// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credential

const (
	NameMinLen = 3
	NameMaxLen = 14
)

// Name is a validated display name.
type Name struct {
	value string
}

// ParseName sanitizes raw to ASCII alphanumerics and applies the length rules.
// Values longer than [NameMaxLen] keep their first [NameMaxLen] characters.
func ParseName(raw string) (Name, error) {
	sanitized := filter(raw, isAlphanumeric)

	if sanitized == "" {
		return Name{}, reject(FieldName, ErrEmpty)
	}

	if len(sanitized) < NameMinLen {
		return Name{}, reject(FieldName, ErrTooShort)
	}

	if len(sanitized) > NameMaxLen {
		return Name{value: sanitized[:NameMaxLen]}, nil
	}

	return Name{value: sanitized}, nil
}

// String returns the canonical name.
func (n Name) String() string { return n.value }
