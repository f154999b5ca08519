package entity

import "time"

const (
	// OTPTTL is how long a challenge stays redeemable after issuance.
	OTPTTL = 10 * time.Minute
	// OTPMaxAttempts is the number of failed submissions before a challenge
	// is discarded.
	OTPMaxAttempts = 5
	// OTPResendCooldown is the minimum age of a challenge before a resend
	// request is honoured.
	OTPResendCooldown = 30 * time.Second
)

// OTPChallenge is a pending email verification code. At most one live
// challenge exists per (lower-cased) email; issuing a new one supersedes it.
type OTPChallenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Attempts  int       `json:"attempts"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Exhausted reports whether the challenge has burned all its attempts.
func (c *OTPChallenge) Exhausted() bool {
	return c.Attempts >= OTPMaxAttempts
}
