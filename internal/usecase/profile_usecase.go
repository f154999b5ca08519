package usecase

import (
	"context"

	"influencerhub/internal/domain/entity"
)

// UpdateCreatorProfileInput carries the fields a creator may change. Pointer
// fields distinguish "absent" from "set to zero". Email, password and role
// are not updatable through this path.
type UpdateCreatorProfileInput struct {
	Name               *string   `json:"name"`
	Phone              *string   `json:"phone"`
	WhatsappNumber     *string   `json:"whatsappNumber"`
	InstagramProfile   *string   `json:"instagramProfile"`
	FollowersCount     *int64    `json:"followersCount"`
	AverageReelViews   *int64    `json:"averageReelViews"`
	PastCollaborations *int64    `json:"pastCollaborations"`
	Address            *string   `json:"address"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Country            *string   `json:"country"`
	Pincode            *string   `json:"pincode"`
	ContentNiche       *[]string `json:"contentNiche"`
	CreatorType        *string   `json:"creatorType"`
	YoutubeLink        *string   `json:"youtubeLink"`
	YoutubeSubscribers *int64    `json:"youtubeSubscribers"`
}

// UpdateBrandProfileInput carries the fields a brand may change.
type UpdateBrandProfileInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"companyName"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
}

// ProfileUsecase defines the interface for authenticated profile access.
type ProfileUsecase interface {
	// Get returns the caller's role-tagged, password-free profile.
	Get(ctx context.Context, userID string, role entity.Role) (any, error)

	// UpdateCreator applies a partial update to a creator profile and
	// returns the updated projection.
	UpdateCreator(ctx context.Context, userID string, input *UpdateCreatorProfileInput) (*CreatorView, error)

	// UpdateBrand applies a partial update to a brand profile and returns
	// the updated projection.
	UpdateBrand(ctx context.Context, userID string, input *UpdateBrandProfileInput) (*BrandView, error)
}
