// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// VerificationStatus tracks whether an account's identity has been reviewed.
type VerificationStatus string

const (
	// VerificationPending is the initial status of every new account.
	VerificationPending VerificationStatus = "pending"
	// VerificationVerified marks an account that passed review.
	VerificationVerified VerificationStatus = "verified"
	// VerificationRejected marks an account that failed review.
	VerificationRejected VerificationStatus = "rejected"
)

// SubscriptionStatus tracks a creator's paid-plan state.
type SubscriptionStatus string

const (
	// SubscriptionFree is the default plan for new creators.
	SubscriptionFree SubscriptionStatus = "free"
	// SubscriptionPremium marks a creator on a paid plan.
	SubscriptionPremium SubscriptionStatus = "premium"
)

// Gender is the creator's self-reported gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Creator is an influencer account. Email, instagram username and phone are
// unique within the creators collection; email and instagram username are
// stored lower-cased.
type Creator struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       string             `json:"-"`
	Phone              string             `json:"phone"`
	WhatsappNumber     string             `json:"whatsappNumber"`
	InstagramProfile   string             `json:"instagramProfile"`
	InstagramUsername  string             `json:"instagramUsername"`
	FollowersCount     int64              `json:"followersCount"`
	AverageReelViews   int64              `json:"averageReelViews"`
	PastCollaborations int64              `json:"pastCollaborations"`
	Age                int                `json:"age"`
	Gender             Gender             `json:"gender"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Country            string             `json:"country"`
	Pincode            string             `json:"pincode"`
	ContentNiche       []string           `json:"contentNiche"`
	CreatorType        string             `json:"creatorType"`
	YoutubeLink        string             `json:"youtubeLink,omitempty"`
	YoutubeSubscribers int64              `json:"youtubeSubscribers,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Brand is a company account that runs campaigns. Email is unique within the
// brands collection and stored lower-cased.
type Brand struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       string             `json:"-"`
	Phone              string             `json:"phone"`
	CompanyName        string             `json:"companyName"`
	Website            string             `json:"website,omitempty"`
	Industry           string             `json:"industry"`
	Description        string             `json:"description"`
	Logo               string             `json:"logo,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}
