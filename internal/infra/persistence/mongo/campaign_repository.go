package mongo

import (
	"context"
	"time"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// campaignRepository implements repository.CampaignRepository on MongoDB.
type campaignRepository struct {
	coll *mongo.Collection
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *mongo.Database) repository.CampaignRepository {
	return &campaignRepository{coll: db.Collection(model.CampaignModel{}.CollectionName())}
}

func (repo *campaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrCampaignNotFound
	}

	var m model.CampaignModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return m.ToEntity(), nil
}

func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	m, err := model.CampaignModelFromEntity(campaign)
	if err != nil {
		return err
	}
	if m.ApplicantIDs == nil {
		m.ApplicantIDs = []bson.ObjectID{}
	}
	if m.ApprovedInfluencerIDs == nil {
		m.ApprovedInfluencerIDs = []bson.ObjectID{}
	}

	result, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		campaign.ID = oid.Hex()
	}

	return nil
}

func (repo *campaignRepository) List(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	// Drafts stay hidden even when a status filter is present.
	query := bson.M{"status": bson.M{"$ne": string(entity.CampaignDraft)}}
	if filter.Status == entity.CampaignDraft {
		return []*entity.Campaign{}, nil
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.BrandID != "" {
		brandOID, err := bson.ObjectIDFromHex(filter.BrandID)
		if err != nil {
			return []*entity.Campaign{}, nil
		}
		query["brandId"] = brandOID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return repo.find(ctx, query, opts)
}

func (repo *campaignRepository) ListByBrand(ctx context.Context, brandID string) ([]*entity.Campaign, error) {
	brandOID, err := bson.ObjectIDFromHex(brandID)
	if err != nil {
		return []*entity.Campaign{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return repo.find(ctx, bson.M{"brandId": brandOID}, opts)
}

func (repo *campaignRepository) AddApplicant(ctx context.Context, campaignID, creatorID string) error {
	campaignOID, err := bson.ObjectIDFromHex(campaignID)
	if err != nil {
		return repository.ErrCampaignNotFound
	}
	creatorOID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return errors.Wrapf(err, "invalid creator id %q", creatorID)
	}

	update := bson.M{
		"$addToSet": bson.M{"applicants": creatorOID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": campaignOID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add applicant")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

func (repo *campaignRepository) find(ctx context.Context, query bson.M, opts *options.FindOptionsBuilder) ([]*entity.Campaign, error) {
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	var models []model.CampaignModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(models))
	for i := range models {
		campaigns = append(campaigns, models[i].ToEntity())
	}

	return campaigns, nil
}

// applicationRepository implements repository.ApplicationRepository on MongoDB.
type applicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *mongo.Database) repository.ApplicationRepository {
	return &applicationRepository{coll: db.Collection(model.ApplicationModel{}.CollectionName())}
}

func (repo *applicationRepository) FindByCampaignAndCreator(ctx context.Context, campaignID, creatorID string) (*entity.CampaignApplication, error) {
	campaignOID, err := bson.ObjectIDFromHex(campaignID)
	if err != nil {
		return nil, repository.ErrApplicationNotFound
	}
	creatorOID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, repository.ErrApplicationNotFound
	}

	var m model.ApplicationModel
	filter := bson.M{"campaignId": campaignOID, "creatorId": creatorOID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return m.ToEntity(), nil
}

func (repo *applicationRepository) Create(ctx context.Context, app *entity.CampaignApplication) error {
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	m, err := model.ApplicationModelFromEntity(app)
	if err != nil {
		return err
	}
	if m.SubmittedAssets == nil {
		m.SubmittedAssets = []string{}
	}

	result, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrAlreadyApplied
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		app.ID = oid.Hex()
	}

	return nil
}

func (repo *applicationRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.CampaignApplication, error) {
	creatorOID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return []*entity.CampaignApplication{}, nil
	}

	return repo.find(ctx, bson.M{"creatorId": creatorOID})
}

func (repo *applicationRepository) ListByCampaignIDs(ctx context.Context, campaignIDs []string) ([]*entity.CampaignApplication, error) {
	oids := hexToObjectIDs(campaignIDs)
	if len(oids) == 0 {
		return []*entity.CampaignApplication{}, nil
	}

	return repo.find(ctx, bson.M{"campaignId": bson.M{"$in": oids}})
}

func (repo *applicationRepository) ListByCreatorAndCampaignIDs(ctx context.Context, creatorID string, campaignIDs []string) ([]*entity.CampaignApplication, error) {
	creatorOID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return []*entity.CampaignApplication{}, nil
	}
	oids := hexToObjectIDs(campaignIDs)
	if len(oids) == 0 {
		return []*entity.CampaignApplication{}, nil
	}

	return repo.find(ctx, bson.M{"creatorId": creatorOID, "campaignId": bson.M{"$in": oids}})
}

func (repo *applicationRepository) find(ctx context.Context, query bson.M) ([]*entity.CampaignApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	var models []model.ApplicationModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode applications")
	}

	apps := make([]*entity.CampaignApplication, 0, len(models))
	for i := range models {
		apps = append(apps, models[i].ToEntity())
	}

	return apps, nil
}

// hexToObjectIDs converts entity IDs, dropping malformed ones. A malformed ID
// cannot match any stored document anyway.
func hexToObjectIDs(ids []string) []bson.ObjectID {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	return oids
}
