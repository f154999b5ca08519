// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"influencerhub/internal/delivery/http/response"
	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup, login and OTP handlers.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	otpUC     usecase.OTPUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accountUC usecase.AccountUsecase, otpUC usecase.OTPUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		otpUC:     otpUC,
		logger:    logger,
	}
}

// Signup handles the role-discriminated registration request. The body is
// read once so the role can be peeked before decoding the role-specific DTO.
func (h *AuthHandler) Signup(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	var envelope struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	switch entity.Role(envelope.Role) {
	case entity.RoleCreator:
		return h.signupCreator(c, body)
	case entity.RoleBrand:
		return h.signupBrand(c, body)
	default:
		return errors.WithStack(domainerrors.ErrInvalidRole)
	}
}

func (h *AuthHandler) signupCreator(c echo.Context, body []byte) error {
	input := new(usecase.SignupCreatorInput)
	if err := json.Unmarshal(body, input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SignupCreator(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Creator registered successfully")
}

func (h *AuthHandler) signupBrand(c echo.Context, body []byte) error {
	input := new(usecase.SignupBrandInput)
	if err := json.Unmarshal(body, input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.SignupBrand(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Brand registered successfully")
}

// Login handles the login request for both roles.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// SendOTP handles the request to issue or resend a verification code.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	input := new(usecase.SendOTPInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.otpUC.Send(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": input.Email}, "OTP sent successfully")
}

// VerifyOTP handles the request to redeem a verification code.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	input := new(usecase.VerifyOTPInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.otpUC.Verify(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "OTP verified successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
