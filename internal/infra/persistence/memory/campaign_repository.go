package memory

import (
	"context"
	"slices"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
)

// campaignRepository implements repository.CampaignRepository over a Store.
type campaignRepository struct {
	store *Store
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(store *Store) repository.CampaignRepository {
	return &campaignRepository{store: store}
}

func (repo *campaignRepository) FindByID(_ context.Context, id string) (*entity.Campaign, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, campaign := range repo.store.campaigns {
		if campaign.ID == id {
			return cloneCampaign(campaign), nil
		}
	}

	return nil, repository.ErrCampaignNotFound
}

func (repo *campaignRepository) Create(_ context.Context, campaign *entity.Campaign) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.Now()
	campaign.ID = repo.store.nextID()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	if campaign.ApplicantIDs == nil {
		campaign.ApplicantIDs = []string{}
	}
	if campaign.ApprovedInfluencerIDs == nil {
		campaign.ApprovedInfluencerIDs = []string{}
	}
	repo.store.campaigns = append(repo.store.campaigns, cloneCampaign(campaign))

	return nil
}

func (repo *campaignRepository) List(_ context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	result := make([]*entity.Campaign, 0)
	// Walk newest-first over the insertion-ordered slice.
	for i := len(repo.store.campaigns) - 1; i >= 0; i-- {
		campaign := repo.store.campaigns[i]
		if campaign.Status == entity.CampaignDraft {
			continue
		}
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		if filter.BrandID != "" && campaign.BrandID != filter.BrandID {
			continue
		}
		result = append(result, cloneCampaign(campaign))
		if filter.Limit > 0 && int64(len(result)) == filter.Limit {
			break
		}
	}

	return result, nil
}

func (repo *campaignRepository) ListByBrand(_ context.Context, brandID string) ([]*entity.Campaign, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	result := make([]*entity.Campaign, 0)
	for i := len(repo.store.campaigns) - 1; i >= 0; i-- {
		campaign := repo.store.campaigns[i]
		if campaign.BrandID == brandID {
			result = append(result, cloneCampaign(campaign))
		}
	}

	return result, nil
}

func (repo *campaignRepository) AddApplicant(_ context.Context, campaignID, creatorID string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, campaign := range repo.store.campaigns {
		if campaign.ID != campaignID {
			continue
		}
		if !slices.Contains(campaign.ApplicantIDs, creatorID) {
			campaign.ApplicantIDs = append(campaign.ApplicantIDs, creatorID)
			campaign.UpdatedAt = repo.store.Now()
		}

		return nil
	}

	return repository.ErrCampaignNotFound
}

// applicationRepository implements repository.ApplicationRepository over a Store.
type applicationRepository struct {
	store *Store
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(store *Store) repository.ApplicationRepository {
	return &applicationRepository{store: store}
}

func (repo *applicationRepository) FindByCampaignAndCreator(_ context.Context, campaignID, creatorID string) (*entity.CampaignApplication, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, app := range repo.store.applications {
		if app.CampaignID == campaignID && app.CreatorID == creatorID {
			return cloneApplication(app), nil
		}
	}

	return nil, repository.ErrApplicationNotFound
}

func (repo *applicationRepository) Create(_ context.Context, app *entity.CampaignApplication) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.applications {
		if existing.CampaignID == app.CampaignID && existing.CreatorID == app.CreatorID {
			return domainerrors.ErrAlreadyApplied
		}
	}

	now := repo.store.Now()
	app.ID = repo.store.nextID()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.SubmittedAssets == nil {
		app.SubmittedAssets = []string{}
	}
	repo.store.applications = append(repo.store.applications, cloneApplication(app))

	return nil
}

func (repo *applicationRepository) ListByCreator(_ context.Context, creatorID string) ([]*entity.CampaignApplication, error) {
	return repo.list(func(app *entity.CampaignApplication) bool {
		return app.CreatorID == creatorID
	})
}

func (repo *applicationRepository) ListByCampaignIDs(_ context.Context, campaignIDs []string) ([]*entity.CampaignApplication, error) {
	return repo.list(func(app *entity.CampaignApplication) bool {
		return slices.Contains(campaignIDs, app.CampaignID)
	})
}

func (repo *applicationRepository) ListByCreatorAndCampaignIDs(_ context.Context, creatorID string, campaignIDs []string) ([]*entity.CampaignApplication, error) {
	return repo.list(func(app *entity.CampaignApplication) bool {
		return app.CreatorID == creatorID && slices.Contains(campaignIDs, app.CampaignID)
	})
}

func (repo *applicationRepository) list(match func(*entity.CampaignApplication) bool) ([]*entity.CampaignApplication, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	result := make([]*entity.CampaignApplication, 0)
	for i := len(repo.store.applications) - 1; i >= 0; i-- {
		if match(repo.store.applications[i]) {
			result = append(result, cloneApplication(repo.store.applications[i]))
		}
	}

	return result, nil
}
