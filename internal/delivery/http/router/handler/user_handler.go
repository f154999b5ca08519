package handler

import (
	"log/slog"
	"net/http"

	"influencerhub/internal/delivery/http/response"
	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's role-tagged, password-free profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.Get(c.Request().Context(), userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to the caller's profile. The DTO is
// picked by the caller's role; email, password and role stay immutable here.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	switch role {
	case entity.RoleCreator:
		input := new(usecase.UpdateCreatorProfileInput)
		if err := c.Bind(input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
		}

		view, err := h.uc.UpdateCreator(c.Request().Context(), userID, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, view, "Profile updated successfully")
	case entity.RoleBrand:
		input := new(usecase.UpdateBrandProfileInput)
		if err := c.Bind(input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
		}

		view, err := h.uc.UpdateBrand(c.Request().Context(), userID, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, view, "Profile updated successfully")
	default:
		return errors.WithStack(domainerrors.ErrForbidden)
	}
}
