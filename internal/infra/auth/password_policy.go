package auth

import (
	"fmt"
	"strings"
	"unicode"

	"influencerhub/config"
	"influencerhub/internal/domain/service"
)

// specialCharacters is the fixed set a password must draw one character from.
const specialCharacters = "!@#$%^&*"

// passwordPolicy is a concrete implementation of the PasswordPolicy interface.
// It collects every violated rule instead of failing fast so the client can
// show all problems at once.
type passwordPolicy struct {
	minLength int
}

// NewPasswordPolicy is the constructor for passwordPolicy.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	return &passwordPolicy{minLength: cfg.PasswordMinLength()}
}

// Validate returns the list of violated rules; empty means acceptable.
func (p *passwordPolicy) Validate(password string) []string {
	var violations []string

	if len(password) < p.minLength {
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters long", p.minLength))
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialCharacters, r) {
			hasSpecial = true
		}
	}

	if !hasLetter {
		violations = append(violations, "Password must contain at least one letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, fmt.Sprintf("Password must contain at least one special character (%s)", specialCharacters))
	}

	return violations
}
