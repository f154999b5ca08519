// Package util contains small, dependency-free helpers shared across layers.
package util

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address. This is a
// shallow shape check; proof of control comes from the OTP flow.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizePhone converts a phone number to a country-code-prefixed canonical
// form. Non-digits are stripped; a 10-digit local number gets the default
// country code; a number already carrying that country code passes through
// with a leading plus; anything else passes through with a leading plus only.
// This is best-effort normalization, not full E.164 validation.
func NormalizePhone(raw, defaultCountryCode string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if cleaned == "" {
		return ""
	}

	if len(cleaned) == 10 {
		return "+" + defaultCountryCode + cleaned
	}
	if strings.HasPrefix(cleaned, defaultCountryCode) && len(cleaned) == 10+len(defaultCountryCode) {
		return "+" + cleaned
	}

	return "+" + cleaned
}
