package usecase

import "context"

// SendOTPInput defines the data required to issue a verification code.
// UserName, when present, personalises the email greeting.
type SendOTPInput struct {
	Email    string `json:"email" validate:"required,email"`
	UserName string `json:"userName"`
	IsResend bool   `json:"isResend"`
}

// VerifyOTPInput defines the data required to redeem a verification code.
type VerifyOTPInput struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// VerifyOTPOutput confirms a successful verification.
type VerifyOTPOutput struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
	Email    string `json:"email"`
}

// OTPUsecase defines the interface for the email verification lifecycle.
type OTPUsecase interface {
	// Send issues a fresh challenge for the email, superseding any existing
	// one, and dispatches the code. Resend requests inside the cooldown
	// window are rejected with the remaining wait time.
	Send(ctx context.Context, input *SendOTPInput) error

	// Verify redeems a code against the live challenge for the email.
	Verify(ctx context.Context, input *VerifyOTPInput) (*VerifyOTPOutput, error)

	// IsVerified reports whether a verified challenge exists for the email.
	IsVerified(ctx context.Context, email string) (bool, error)

	// CleanupExpired removes challenges past their expiry and reports how
	// many were removed. The document store's TTL index covers the same
	// ground in the background.
	CleanupExpired(ctx context.Context) (int64, error)
}
