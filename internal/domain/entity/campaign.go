package entity

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	// CampaignDraft campaigns are never shown in the public listing.
	CampaignDraft CampaignStatus = "draft"
	// CampaignActive campaigns accept applications.
	CampaignActive CampaignStatus = "active"
	// CampaignClosed campaigns no longer accept applications.
	CampaignClosed CampaignStatus = "closed"
	// CampaignCompleted campaigns have finished delivery.
	CampaignCompleted CampaignStatus = "completed"
)

// IsValid checks if the CampaignStatus is a known value.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignClosed, CampaignCompleted:
		return true
	default:
		return false
	}
}

// Campaign is a brand's request for creator collaboration. The start date
// strictly precedes the end date.
type Campaign struct {
	ID                    string         `json:"id"`
	BrandID               string         `json:"brandId"`
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Budget                float64        `json:"budget"`
	StartDate             time.Time      `json:"startDate"`
	EndDate               time.Time      `json:"endDate"`
	RequiredNiches        []string       `json:"requiredNiches"`
	RequiredFollowers     int64          `json:"requiredFollowers"`
	Status                CampaignStatus `json:"status"`
	ApplicantIDs          []string       `json:"applicantIds"`
	ApprovedInfluencerIDs []string       `json:"approvedInfluencerIds"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}
