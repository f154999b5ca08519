package memory

import (
	"context"
	"sync"

	"influencerhub/internal/domain/repository"
)

// memoryTransactionManager implements the domain's TransactionManager
// interface over a Store. It serializes callbacks with a mutex so
// check-then-act sequences inside one Execute call cannot interleave.
// It does not roll back partial writes on error.
type memoryTransactionManager struct {
	mu      sync.Mutex
	factory *memoryRepositoryFactory
}

// memoryRepositoryFactory implements the domain's RepositoryFactory interface.
type memoryRepositoryFactory struct {
	store *Store
}

func (f *memoryRepositoryFactory) CreatorRepo() repository.CreatorRepository {
	return NewCreatorRepository(f.store)
}

func (f *memoryRepositoryFactory) BrandRepo() repository.BrandRepository {
	return NewBrandRepository(f.store)
}

func (f *memoryRepositoryFactory) CampaignRepo() repository.CampaignRepository {
	return NewCampaignRepository(f.store)
}

func (f *memoryRepositoryFactory) ApplicationRepo() repository.ApplicationRepository {
	return NewApplicationRepository(f.store)
}

func (f *memoryRepositoryFactory) OTPRepo() repository.OTPRepository {
	return NewOTPRepository(f.store)
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{factory: &memoryRepositoryFactory{store: store}}
}

// Execute runs the given function under the manager's lock.
func (tm *memoryTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(ctx, tm.factory)
}
