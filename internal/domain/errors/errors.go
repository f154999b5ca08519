// Package errors defines the application error taxonomy. Every error that
// crosses the usecase boundary maps onto an AppError so the HTTP layer can
// translate it without per-handler switch statements.
package errors

import (
	"fmt"
	"net/http"

	"influencerhub/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information,
// such as the list of violated password rules.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
var (
	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Missing or invalid fields",
	)

	ErrPasswordPolicy = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_POLICY",
		"Password does not meet requirements",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
	)

	// Account-related errors.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already registered",
	)

	ErrInstagramTaken = NewBaseError(
		http.StatusConflict,
		"INSTAGRAM_TAKEN",
		"Instagram username already registered",
	)

	ErrPhoneTaken = NewBaseError(
		http.StatusConflict,
		"PHONE_TAKEN",
		"Phone number already registered",
	)

	// Credential errors never reveal whether the email or the password was
	// wrong, to avoid account enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
	)

	// OTP-related errors.
	ErrOTPNotFound = NewBaseError(
		http.StatusUnauthorized,
		"OTP_NOT_FOUND",
		"OTP not found or expired",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusUnauthorized,
		"OTP_EXPIRED",
		"OTP has expired",
	)

	ErrOTPTooManyAttempts = NewBaseError(
		http.StatusUnauthorized,
		"OTP_TOO_MANY_ATTEMPTS",
		"Too many attempts. Please request a new OTP",
	)

	ErrOTPMismatch = NewBaseError(
		http.StatusUnauthorized,
		"OTP_INVALID",
		"Invalid OTP. Please try again",
	)

	ErrMailDispatchFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_DISPATCH_FAILED",
		"Failed to send OTP email",
	)

	// Campaign-related errors.
	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"Campaign not found",
	)

	ErrAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"ALREADY_APPLIED",
		"Already applied to this campaign",
	)

	// General errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// NewResendCooldown builds the 429 returned when an OTP resend arrives before
// the cooldown has elapsed. waitSeconds is the remaining wait.
func NewResendCooldown(waitSeconds int) *BaseError {
	e := NewBaseError(
		http.StatusTooManyRequests,
		"OTP_RESEND_TOO_SOON",
		fmt.Sprintf("Please wait %d seconds before requesting a new OTP", waitSeconds),
	)
	e.details = map[string]int{"waitSeconds": waitSeconds}

	return e
}

// DatabaseExecuteError represents a storage execution error, implementing the
// AppError interface. The cause is logged server-side only.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information. Kept empty on the wire; the
// wrapped cause is for logs.
func (e *DatabaseExecuteError) Details() any {
	return nil
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
