package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"influencerhub/config"
)

func TestPasswordPolicy_ValidPasswords(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	for _, pw := range []string{"Abcdef1!", "password1@", "x1!x1!x1", "LongerPassw0rd*"} {
		assert.Empty(t, policy.Validate(pw), "password %q should be valid", pw)
	}
}

func TestPasswordPolicy_AccumulatesAllViolations(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	// "ab" satisfies the letter rule only: it is too short and has neither
	// a digit nor a special character.
	violations := policy.Validate("ab")
	assert.Len(t, violations, 3)
	assert.Contains(t, violations, "Password must be at least 8 characters long")
	assert.Contains(t, violations, "Password must contain at least one number")
	assert.Contains(t, violations, "Password must contain at least one special character (!@#$%^&*)")
}

func TestPasswordPolicy_SingleViolations(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "too short", password: "Ab1!", want: "Password must be at least 8 characters long"},
		{name: "no letter", password: "12345678!", want: "Password must contain at least one letter"},
		{name: "no digit", password: "abcdefgh!", want: "Password must contain at least one number"},
		{name: "no special", password: "abcdefg1", want: "Password must contain at least one special character (!@#$%^&*)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := policy.Validate(tt.password)
			assert.Len(t, violations, 1)
			assert.Equal(t, tt.want, violations[0])
		})
	}
}

func TestPasswordPolicy_ConfiguredMinLength(t *testing.T) {
	cfg := &config.Config{PasswordStrength: &config.PasswordStrengthConfig{MinLength: 12}}
	policy := NewPasswordPolicy(cfg)

	violations := policy.Validate("Abcdef1!")
	assert.Contains(t, violations, "Password must be at least 12 characters long")
}
