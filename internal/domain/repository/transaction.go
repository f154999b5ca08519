package repository

import "context"

// TransactionManager defines the interface for running repository operations
// inside a single storage transaction. This keeps the usecase layer free of
// driver-specific session handling.
type TransactionManager interface {
	// Execute runs fn within a transaction. The context passed to fn is
	// bound to that transaction and must be used for every repository call
	// inside it. If fn returns an error the transaction is rolled back,
	// otherwise it is committed.
	Execute(ctx context.Context, fn func(ctx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances that honour the
// transaction context they are called with.
type RepositoryFactory interface {
	// CreatorRepo returns the creator repository.
	CreatorRepo() CreatorRepository

	// BrandRepo returns the brand repository.
	BrandRepo() BrandRepository

	// CampaignRepo returns the campaign repository.
	CampaignRepo() CampaignRepository

	// ApplicationRepo returns the campaign application repository.
	ApplicationRepo() ApplicationRepository

	// OTPRepo returns the OTP challenge repository.
	OTPRepo() OTPRepository
}
