package repository

import (
	"context"
	"errors"

	"influencerhub/internal/domain/entity"
)

// ErrCampaignNotFound is returned when no campaign matches the query.
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrApplicationNotFound is returned when no application matches the query.
var ErrApplicationNotFound = errors.New("application not found")

// CampaignFilter narrows the public campaign listing. Drafts are always
// excluded from List regardless of the Status value.
type CampaignFilter struct {
	BrandID string
	Status  entity.CampaignStatus
	Limit   int64
}

// CampaignRepository defines the standard operations for campaign persistence.
type CampaignRepository interface {
	// FindByID retrieves a single campaign by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Campaign, error)

	// Create persists a new campaign and assigns its ID and timestamps.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// List returns non-draft campaigns matching the filter, newest first.
	List(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, error)

	// ListByBrand returns all campaigns owned by a brand, drafts included.
	ListByBrand(ctx context.Context, brandID string) ([]*entity.Campaign, error)

	// AddApplicant adds a creator ID to the campaign's applicant set; adding
	// an ID that is already present is a no-op.
	AddApplicant(ctx context.Context, campaignID, creatorID string) error
}

// ApplicationRepository defines persistence for campaign applications.
type ApplicationRepository interface {
	// FindByCampaignAndCreator retrieves the application for a
	// (campaignId, creatorId) pair, if any.
	FindByCampaignAndCreator(ctx context.Context, campaignID, creatorID string) (*entity.CampaignApplication, error)

	// Create persists a new application and assigns its ID and timestamps.
	Create(ctx context.Context, app *entity.CampaignApplication) error

	// ListByCreator returns a creator's applications, newest first.
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.CampaignApplication, error)

	// ListByCampaignIDs returns applications across the given campaigns,
	// newest first.
	ListByCampaignIDs(ctx context.Context, campaignIDs []string) ([]*entity.CampaignApplication, error)

	// ListByCreatorAndCampaignIDs returns a creator's applications restricted
	// to the given campaigns. Used to annotate campaign listings.
	ListByCreatorAndCampaignIDs(ctx context.Context, creatorID string, campaignIDs []string) ([]*entity.CampaignApplication, error)
}
