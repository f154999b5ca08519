package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"influencerhub/internal/domain/entity"
)

// CampaignModel mirrors the 'campaigns' collection. Applicant and approved
// influencer references are stored as ObjectIDs.
type CampaignModel struct {
	ID                    bson.ObjectID   `bson:"_id,omitempty"`
	BrandID               bson.ObjectID   `bson:"brandId"`
	Title                 string          `bson:"title"`
	Description           string          `bson:"description"`
	Budget                float64         `bson:"budget"`
	StartDate             time.Time       `bson:"startDate"`
	EndDate               time.Time       `bson:"endDate"`
	RequiredNiches        []string        `bson:"requiredNiches"`
	RequiredFollowers     int64           `bson:"requiredFollowers"`
	Status                string          `bson:"status"`
	ApplicantIDs          []bson.ObjectID `bson:"applicants"`
	ApprovedInfluencerIDs []bson.ObjectID `bson:"approvedInfluencers"`
	CreatedAt             time.Time       `bson:"createdAt"`
	UpdatedAt             time.Time       `bson:"updatedAt"`
}

// CollectionName returns the collection this model is stored in.
func (CampaignModel) CollectionName() string {
	return "campaigns"
}

// ToEntity converts the persistence model to a domain entity.
func (m *CampaignModel) ToEntity() *entity.Campaign {
	return &entity.Campaign{
		ID:                    m.ID.Hex(),
		BrandID:               m.BrandID.Hex(),
		Title:                 m.Title,
		Description:           m.Description,
		Budget:                m.Budget,
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		RequiredNiches:        m.RequiredNiches,
		RequiredFollowers:     m.RequiredFollowers,
		Status:                entity.CampaignStatus(m.Status),
		ApplicantIDs:          hexStrings(m.ApplicantIDs),
		ApprovedInfluencerIDs: hexStrings(m.ApprovedInfluencerIDs),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// CampaignModelFromEntity converts a domain entity to its persistence model.
func CampaignModelFromEntity(e *entity.Campaign) (*CampaignModel, error) {
	id, err := objectIDFromHex(e.ID)
	if err != nil {
		return nil, err
	}
	brandID, err := objectIDFromHex(e.BrandID)
	if err != nil {
		return nil, err
	}
	applicants, err := objectIDsFromHex(e.ApplicantIDs)
	if err != nil {
		return nil, err
	}
	approved, err := objectIDsFromHex(e.ApprovedInfluencerIDs)
	if err != nil {
		return nil, err
	}

	return &CampaignModel{
		ID:                    id,
		BrandID:               brandID,
		Title:                 e.Title,
		Description:           e.Description,
		Budget:                e.Budget,
		StartDate:             e.StartDate,
		EndDate:               e.EndDate,
		RequiredNiches:        e.RequiredNiches,
		RequiredFollowers:     e.RequiredFollowers,
		Status:                string(e.Status),
		ApplicantIDs:          applicants,
		ApprovedInfluencerIDs: approved,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}, nil
}

// ApplicationModel mirrors the 'campaign_applications' collection.
type ApplicationModel struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	CampaignID      bson.ObjectID `bson:"campaignId"`
	CreatorID       bson.ObjectID `bson:"creatorId"`
	Status          string        `bson:"status"`
	SubmittedAssets []string      `bson:"submittedAssets"`
	SubmissionDate  *time.Time    `bson:"submissionDate,omitempty"`
	ApprovalDate    *time.Time    `bson:"approvalDate,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt"`
}

// CollectionName returns the collection this model is stored in.
func (ApplicationModel) CollectionName() string {
	return "campaign_applications"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ApplicationModel) ToEntity() *entity.CampaignApplication {
	return &entity.CampaignApplication{
		ID:              m.ID.Hex(),
		CampaignID:      m.CampaignID.Hex(),
		CreatorID:       m.CreatorID.Hex(),
		Status:          entity.ApplicationStatus(m.Status),
		SubmittedAssets: m.SubmittedAssets,
		SubmissionDate:  m.SubmissionDate,
		ApprovalDate:    m.ApprovalDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ApplicationModelFromEntity converts a domain entity to its persistence model.
func ApplicationModelFromEntity(e *entity.CampaignApplication) (*ApplicationModel, error) {
	id, err := objectIDFromHex(e.ID)
	if err != nil {
		return nil, err
	}
	campaignID, err := objectIDFromHex(e.CampaignID)
	if err != nil {
		return nil, err
	}
	creatorID, err := objectIDFromHex(e.CreatorID)
	if err != nil {
		return nil, err
	}

	return &ApplicationModel{
		ID:              id,
		CampaignID:      campaignID,
		CreatorID:       creatorID,
		Status:          string(e.Status),
		SubmittedAssets: e.SubmittedAssets,
		SubmissionDate:  e.SubmissionDate,
		ApprovalDate:    e.ApprovalDate,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}, nil
}
