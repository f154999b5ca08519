package repository

import (
	"context"
	"errors"
	"time"

	"influencerhub/internal/domain/entity"
)

// ErrOTPNotFound is returned when no challenge exists for an email.
var ErrOTPNotFound = errors.New("otp challenge not found")

// OTPRepository persists at most one OTP challenge per lower-cased email.
type OTPRepository interface {
	// FindByEmail retrieves the live challenge for an email.
	FindByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error)

	// Replace deletes any existing challenge for the email and persists the
	// given one, setting its timestamps.
	Replace(ctx context.Context, challenge *entity.OTPChallenge) error

	// Update persists attempt-counter and verified-flag mutations.
	Update(ctx context.Context, challenge *entity.OTPChallenge) error

	// Delete removes the challenge for an email. Deleting a missing
	// challenge is not an error.
	Delete(ctx context.Context, email string) error

	// DeleteExpired removes all challenges past their expiry at the given
	// time and reports how many were removed. The document store's TTL
	// index does the same job in the background; this exists for explicit
	// sweeps and for stores without TTL support.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
