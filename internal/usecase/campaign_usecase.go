package usecase

import (
	"context"
	"time"

	"influencerhub/internal/domain/entity"
)

// CreateCampaignInput defines the data required to create a campaign.
// BrandID comes from the authenticated token, never from the body.
type CreateCampaignInput struct {
	BrandID           string    `json:"-"`
	Title             string    `json:"title" validate:"required"`
	Description       string    `json:"description" validate:"required"`
	Budget            float64   `json:"budget" validate:"required,gt=0"`
	StartDate         time.Time `json:"startDate" validate:"required"`
	EndDate           time.Time `json:"endDate" validate:"required"`
	RequiredNiches    []string  `json:"requiredNiches" validate:"required,min=1"`
	RequiredFollowers int64     `json:"requiredFollowers" validate:"gte=0"`
	Status            string    `json:"status"`
}

// ListCampaignsInput narrows the public campaign listing. CreatorID, when
// set, annotates each campaign with that creator's application status.
type ListCampaignsInput struct {
	BrandID   string
	Status    string
	CreatorID string
}

// CampaignView is a campaign projection with the optional per-creator
// application annotation.
type CampaignView struct {
	*entity.Campaign
	ApplicationStatus string `json:"applicationStatus,omitempty"`
}

// ApplyInput defines the data required to apply to a campaign. CreatorID
// comes from the authenticated token.
type ApplyInput struct {
	CreatorID  string `json:"-"`
	CampaignID string `json:"campaignId" validate:"required"`
}

// ApplicationView is an application row annotated with campaign summary
// fields for listings.
type ApplicationView struct {
	ID              string                   `json:"id"`
	CampaignID      string                   `json:"campaignId"`
	CampaignTitle   string                   `json:"campaignTitle"`
	CampaignBudget  float64                  `json:"campaignBudget"`
	CampaignStatus  entity.CampaignStatus    `json:"campaignStatus"`
	CreatorID       string                   `json:"creatorId"`
	Status          entity.ApplicationStatus `json:"status"`
	SubmittedAssets []string                 `json:"submittedAssets"`
	SubmissionDate  *time.Time               `json:"submissionDate,omitempty"`
	ApprovalDate    *time.Time               `json:"approvalDate,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// CampaignUsecase defines the interface for campaign and application
// operations.
type CampaignUsecase interface {
	// Create opens a new campaign owned by the given brand.
	Create(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error)

	// List returns non-draft campaigns, newest first, capped at 50.
	List(ctx context.Context, input *ListCampaignsInput) ([]*CampaignView, error)

	// Apply records a creator's application to a campaign.
	Apply(ctx context.Context, input *ApplyInput) (*entity.CampaignApplication, error)

	// ListApplications returns the caller's applications: a creator sees
	// their own, a brand sees applications across its campaigns.
	ListApplications(ctx context.Context, userID string, role entity.Role) ([]*ApplicationView, error)
}
