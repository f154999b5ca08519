package handler

import (
	"log/slog"
	"net/http"

	"influencerhub/internal/delivery/http/middleware"
	"influencerhub/internal/delivery/http/response"
	"influencerhub/internal/domain/entity"
	"influencerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler holds dependencies for campaign and application handlers.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		uc:     uc,
		logger: logger,
	}
}

// caller reads the authenticated identity set by the auth middleware.
func caller(c echo.Context) (string, entity.Role, bool) {
	userID, okID := c.Get(middleware.ContextKeyUserID).(string)
	role, okRole := c.Get(middleware.ContextKeyRole).(entity.Role)

	return userID, role, okID && okRole && userID != ""
}

// Create handles the campaign creation request. Brand-only; the owning brand
// comes from the token, never from the body.
func (h *CampaignHandler) Create(c echo.Context) error {
	brandID, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.CreateCampaignInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	input.BrandID = brandID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	campaign, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, campaign, "Campaign created successfully")
}

// List handles the public campaign listing request.
func (h *CampaignHandler) List(c echo.Context) error {
	input := &usecase.ListCampaignsInput{
		BrandID:   c.QueryParam("brandId"),
		Status:    c.QueryParam("status"),
		CreatorID: c.QueryParam("creatorId"),
	}

	views, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Campaigns retrieved successfully")
}

// Apply handles a creator's application to a campaign.
func (h *CampaignHandler) Apply(c echo.Context) error {
	creatorID, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.ApplyInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	input.CreatorID = creatorID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.Apply(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListApplications returns the caller's applications: creators see their own,
// brands see applications across their campaigns.
func (h *CampaignHandler) ListApplications(c echo.Context) error {
	userID, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.uc.ListApplications(c.Request().Context(), userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Applications retrieved successfully")
}
