package validator

import (
	"regexp"
	"strings"
)

// emailRegex rejects whitespace and requires a single @ with a dotted domain
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneRegex allows an optional leading + followed by digits, spaces,
// dashes and parentheses
var phoneRegex = regexp.MustCompile(`^\+?[\d\s()-]+$`)

// ContactValidator validates email addresses and phone numbers for
// passengers and accounts
type ContactValidator struct{}

// NewContactValidator creates a new contact validator instance
func NewContactValidator() *ContactValidator {
	return &ContactValidator{}
}

// IsValidEmail reports whether email is well-formed
func (v *ContactValidator) IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone reports whether phone is well-formed. A phone must contain
// only dial characters and at least 10 digits.
func (v *ContactValidator) IsValidPhone(phone string) bool {
	if !phoneRegex.MatchString(phone) {
		return false
	}
	return digitCount(phone) >= 10
}

// NormalizeEmail lowercases and trims an email for case-insensitive
// uniqueness checks
func (v *ContactValidator) NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
