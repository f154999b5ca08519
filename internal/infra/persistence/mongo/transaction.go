package mongo

import (
	"context"

	"influencerhub/config"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface
// using MongoDB sessions. Multi-document transactions require the server to
// run as a replica set; when the transactions config flag is off, Execute
// degrades to running the callback without a session.
type mongoTransactionManager struct {
	db      *mongo.Database
	enabled bool
}

// mongoRepositoryFactory implements the domain's RepositoryFactory interface.
// The repositories it hands out are stateless over the database handle; the
// session is carried by the context passed into each repository call.
type mongoRepositoryFactory struct {
	db *mongo.Database
}

func (f *mongoRepositoryFactory) CreatorRepo() repository.CreatorRepository {
	return NewCreatorRepository(f.db)
}

func (f *mongoRepositoryFactory) BrandRepo() repository.BrandRepository {
	return NewBrandRepository(f.db)
}

func (f *mongoRepositoryFactory) CampaignRepo() repository.CampaignRepository {
	return NewCampaignRepository(f.db)
}

func (f *mongoRepositoryFactory) ApplicationRepo() repository.ApplicationRepository {
	return NewApplicationRepository(f.db)
}

func (f *mongoRepositoryFactory) OTPRepo() repository.OTPRepository {
	return NewOTPRepository(f.db)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	enabled := cfg.Mongo != nil && cfg.Mongo.Transactions

	return &mongoTransactionManager{db: db, enabled: enabled}
}

// Execute runs the given function within a single MongoDB transaction. The
// session-bound context it passes to fn must be used for every repository
// call inside the callback.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	factory := &mongoRepositoryFactory{db: tm.db}

	if !tm.enabled {
		return fn(ctx, factory)
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx context.Context) (any, error) {
		return nil, fn(sessCtx, factory)
	})
	if err != nil {
		return err
	}

	return nil
}
