// Package memory contains an in-memory implementation of the persistence
// layer. It backs unit tests and local runs without a document store. All
// repositories created from one Store share its data and lock.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"influencerhub/internal/domain/entity"
)

// Store holds all collections behind a single lock.
type Store struct {
	mu sync.RWMutex

	// Now stamps created/updated timestamps. Tests override it to pin time.
	Now func() time.Time

	creators map[string]*entity.Creator
	brands   map[string]*entity.Brand
	otps     map[string]*entity.OTPChallenge

	// Campaigns and applications keep insertion order so newest-first
	// listings stay deterministic under a pinned clock.
	campaigns    []*entity.Campaign
	applications []*entity.CampaignApplication
}

// NewStore is the constructor for Store.
func NewStore() *Store {
	return &Store{
		Now:      time.Now,
		creators: make(map[string]*entity.Creator),
		brands:   make(map[string]*entity.Brand),
		otps:     make(map[string]*entity.OTPChallenge),
	}
}

func (s *Store) nextID() string {
	return uuid.NewString()
}

func cloneCreator(c *entity.Creator) *entity.Creator {
	cp := *c
	cp.ContentNiche = slices.Clone(c.ContentNiche)

	return &cp
}

func cloneBrand(b *entity.Brand) *entity.Brand {
	cp := *b

	return &cp
}

func cloneCampaign(c *entity.Campaign) *entity.Campaign {
	cp := *c
	cp.RequiredNiches = slices.Clone(c.RequiredNiches)
	cp.ApplicantIDs = slices.Clone(c.ApplicantIDs)
	cp.ApprovedInfluencerIDs = slices.Clone(c.ApprovedInfluencerIDs)

	return &cp
}

func cloneApplication(a *entity.CampaignApplication) *entity.CampaignApplication {
	cp := *a
	cp.SubmittedAssets = slices.Clone(a.SubmittedAssets)
	if a.SubmissionDate != nil {
		t := *a.SubmissionDate
		cp.SubmissionDate = &t
	}
	if a.ApprovalDate != nil {
		t := *a.ApprovalDate
		cp.ApprovalDate = &t
	}

	return &cp
}

func cloneChallenge(c *entity.OTPChallenge) *entity.OTPChallenge {
	cp := *c

	return &cp
}
