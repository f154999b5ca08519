package service

import "context"

// OTPMailer delivers a one-time code to an email address through an external
// transactional channel. Delivery is at-least-once and fire-and-forget: a
// failed send surfaces as an error but never rolls back the stored challenge.
type OTPMailer interface {
	// SendCode sends the code to the address. displayName may be empty.
	SendCode(ctx context.Context, email, code, displayName string) error
}
