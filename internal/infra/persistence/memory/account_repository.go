package memory

import (
	"context"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
)

// creatorRepository implements repository.CreatorRepository over a Store.
type creatorRepository struct {
	store *Store
}

// NewCreatorRepository is the constructor for creatorRepository.
func NewCreatorRepository(store *Store) repository.CreatorRepository {
	return &creatorRepository{store: store}
}

func (repo *creatorRepository) FindByID(_ context.Context, id string) (*entity.Creator, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	creator, ok := repo.store.creators[id]
	if !ok {
		return nil, repository.ErrCreatorNotFound
	}

	return cloneCreator(creator), nil
}

func (repo *creatorRepository) FindByEmail(_ context.Context, email string) (*entity.Creator, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, creator := range repo.store.creators {
		if creator.Email == email {
			return cloneCreator(creator), nil
		}
	}

	return nil, repository.ErrCreatorNotFound
}

func (repo *creatorRepository) FindByInstagramUsername(_ context.Context, username string) (*entity.Creator, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, creator := range repo.store.creators {
		if creator.InstagramUsername == username {
			return cloneCreator(creator), nil
		}
	}

	return nil, repository.ErrCreatorNotFound
}

func (repo *creatorRepository) FindByPhone(_ context.Context, phone string) (*entity.Creator, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, creator := range repo.store.creators {
		if creator.Phone == phone {
			return cloneCreator(creator), nil
		}
	}

	return nil, repository.ErrCreatorNotFound
}

func (repo *creatorRepository) Create(_ context.Context, creator *entity.Creator) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.creators {
		if existing.Email == creator.Email {
			return domainerrors.ErrEmailTaken
		}
		if existing.InstagramUsername == creator.InstagramUsername {
			return domainerrors.ErrInstagramTaken
		}
		if creator.Phone != "" && existing.Phone == creator.Phone {
			return domainerrors.ErrPhoneTaken
		}
	}

	now := repo.store.Now()
	creator.ID = repo.store.nextID()
	creator.CreatedAt = now
	creator.UpdatedAt = now
	repo.store.creators[creator.ID] = cloneCreator(creator)

	return nil
}

func (repo *creatorRepository) Update(_ context.Context, creator *entity.Creator) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.creators[creator.ID]; !ok {
		return repository.ErrCreatorNotFound
	}

	creator.UpdatedAt = repo.store.Now()
	repo.store.creators[creator.ID] = cloneCreator(creator)

	return nil
}

// brandRepository implements repository.BrandRepository over a Store.
type brandRepository struct {
	store *Store
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(store *Store) repository.BrandRepository {
	return &brandRepository{store: store}
}

func (repo *brandRepository) FindByID(_ context.Context, id string) (*entity.Brand, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	brand, ok := repo.store.brands[id]
	if !ok {
		return nil, repository.ErrBrandNotFound
	}

	return cloneBrand(brand), nil
}

func (repo *brandRepository) FindByEmail(_ context.Context, email string) (*entity.Brand, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, brand := range repo.store.brands {
		if brand.Email == email {
			return cloneBrand(brand), nil
		}
	}

	return nil, repository.ErrBrandNotFound
}

func (repo *brandRepository) Create(_ context.Context, brand *entity.Brand) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.brands {
		if existing.Email == brand.Email {
			return domainerrors.ErrEmailTaken
		}
	}

	now := repo.store.Now()
	brand.ID = repo.store.nextID()
	brand.CreatedAt = now
	brand.UpdatedAt = now
	repo.store.brands[brand.ID] = cloneBrand(brand)

	return nil
}

func (repo *brandRepository) Update(_ context.Context, brand *entity.Brand) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.brands[brand.ID]; !ok {
		return repository.ErrBrandNotFound
	}

	brand.UpdatedAt = repo.store.Now()
	repo.store.brands[brand.ID] = cloneBrand(brand)

	return nil
}
