package memory

import (
	"context"
	"time"

	"influencerhub/internal/domain/entity"
	"influencerhub/internal/domain/repository"
)

// otpRepository implements repository.OTPRepository over a Store.
type otpRepository struct {
	store *Store
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(store *Store) repository.OTPRepository {
	return &otpRepository{store: store}
}

func (repo *otpRepository) FindByEmail(_ context.Context, email string) (*entity.OTPChallenge, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	challenge, ok := repo.store.otps[email]
	if !ok {
		return nil, repository.ErrOTPNotFound
	}

	return cloneChallenge(challenge), nil
}

func (repo *otpRepository) Replace(_ context.Context, challenge *entity.OTPChallenge) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.Now()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now
	repo.store.otps[challenge.Email] = cloneChallenge(challenge)

	return nil
}

func (repo *otpRepository) Update(_ context.Context, challenge *entity.OTPChallenge) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	existing, ok := repo.store.otps[challenge.Email]
	if !ok {
		return repository.ErrOTPNotFound
	}

	existing.Attempts = challenge.Attempts
	existing.Verified = challenge.Verified
	existing.UpdatedAt = repo.store.Now()

	return nil
}

func (repo *otpRepository) Delete(_ context.Context, email string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.otps, email)

	return nil
}

func (repo *otpRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	var removed int64
	for email, challenge := range repo.store.otps {
		if now.After(challenge.ExpiresAt) {
			delete(repo.store.otps, email)
			removed++
		}
	}

	return removed, nil
}
