// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credential

const handleSpecialChars = "-_,' "

var handleAllowed = allowing(handleSpecialChars)

// SanitizeHandle filters a social media handle to ASCII alphanumerics and
// "-_,' " (space included). It reports false when nothing survives, which
// callers treat as an absent handle rather than an error. There is no length
// bound.
func SanitizeHandle(raw string) (string, bool) {
	sanitized := filter(raw, handleAllowed)
	return sanitized, sanitized != ""
}
