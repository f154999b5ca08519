package entity

import "time"

// ApplicationStatus is the lifecycle state of a campaign application.
// It progresses applied -> approved|rejected -> in-progress -> submitted -> completed.
type ApplicationStatus string

const (
	ApplicationApplied    ApplicationStatus = "applied"
	ApplicationApproved   ApplicationStatus = "approved"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationInProgress ApplicationStatus = "in-progress"
	ApplicationSubmitted  ApplicationStatus = "submitted"
	ApplicationCompleted  ApplicationStatus = "completed"
)

// CampaignApplication links one creator to one campaign. The
// (campaignId, creatorId) pair is unique; a second application is rejected.
type CampaignApplication struct {
	ID              string            `json:"id"`
	CampaignID      string            `json:"campaignId"`
	CreatorID       string            `json:"creatorId"`
	Status          ApplicationStatus `json:"status"`
	SubmittedAssets []string          `json:"submittedAssets"`
	SubmissionDate  *time.Time        `json:"submissionDate,omitempty"`
	ApprovalDate    *time.Time        `json:"approvalDate,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
