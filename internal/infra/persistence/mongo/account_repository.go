package mongo

import (
	"context"
	"strings"
	"time"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// creatorRepository implements repository.CreatorRepository on MongoDB.
type creatorRepository struct {
	coll *mongo.Collection
}

// NewCreatorRepository is the constructor for creatorRepository.
func NewCreatorRepository(db *mongo.Database) repository.CreatorRepository {
	return &creatorRepository{coll: db.Collection(model.CreatorModel{}.CollectionName())}
}

func (repo *creatorRepository) FindByID(ctx context.Context, id string) (*entity.Creator, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrCreatorNotFound
	}

	var m model.CreatorModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator by id")
	}

	return m.ToEntity(), nil
}

func (repo *creatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Creator, error) {
	var m model.CreatorModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator by email")
	}

	return m.ToEntity(), nil
}

func (repo *creatorRepository) FindByInstagramUsername(ctx context.Context, username string) (*entity.Creator, error) {
	var m model.CreatorModel
	if err := repo.coll.FindOne(ctx, bson.M{"instagramUsername": username}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator by instagram username")
	}

	return m.ToEntity(), nil
}

func (repo *creatorRepository) FindByPhone(ctx context.Context, phone string) (*entity.Creator, error) {
	var m model.CreatorModel
	if err := repo.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator by phone")
	}

	return m.ToEntity(), nil
}

func (repo *creatorRepository) Create(ctx context.Context, creator *entity.Creator) error {
	now := time.Now().UTC()
	creator.CreatedAt = now
	creator.UpdatedAt = now

	m, err := model.CreatorModelFromEntity(creator)
	if err != nil {
		return err
	}

	result, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return creatorDuplicateKeyError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create creator")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		creator.ID = oid.Hex()
	}

	return nil
}

func (repo *creatorRepository) Update(ctx context.Context, creator *entity.Creator) error {
	creator.UpdatedAt = time.Now().UTC()

	m, err := model.CreatorModelFromEntity(creator)
	if err != nil {
		return err
	}

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return creatorDuplicateKeyError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update creator")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCreatorNotFound
	}

	return nil
}

// creatorDuplicateKeyError maps a duplicate-key write onto the unique index
// that fired. The server names single-field indexes <field>_1.
func creatorDuplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "instagramUsername_1"):
		return domainerrors.ErrInstagramTaken
	case strings.Contains(msg, "phone_1"):
		return domainerrors.ErrPhoneTaken
	case strings.Contains(msg, "email_1"):
		return domainerrors.ErrEmailTaken
	default:
		return domainerrors.ErrConflict
	}
}

// brandRepository implements repository.BrandRepository on MongoDB.
type brandRepository struct {
	coll *mongo.Collection
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *mongo.Database) repository.BrandRepository {
	return &brandRepository{coll: db.Collection(model.BrandModel{}.CollectionName())}
}

func (repo *brandRepository) FindByID(ctx context.Context, id string) (*entity.Brand, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBrandNotFound
	}

	var m model.BrandModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return m.ToEntity(), nil
}

func (repo *brandRepository) FindByEmail(ctx context.Context, email string) (*entity.Brand, error) {
	var m model.BrandModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by email")
	}

	return m.ToEntity(), nil
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	m, err := model.BrandModelFromEntity(brand)
	if err != nil {
		return err
	}

	result, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		brand.ID = oid.Hex()
	}

	return nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brand.UpdatedAt = time.Now().UTC()

	m, err := model.BrandModelFromEntity(brand)
	if err != nil {
		return err
	}

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update brand")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}
