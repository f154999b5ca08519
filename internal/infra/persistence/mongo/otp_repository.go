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
)

// otpRepository implements repository.OTPRepository on MongoDB.
type otpRepository struct {
	coll *mongo.Collection
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *mongo.Database) repository.OTPRepository {
	return &otpRepository{coll: db.Collection(model.OTPModel{}.CollectionName())}
}

func (repo *otpRepository) FindByEmail(ctx context.Context, email string) (*entity.OTPChallenge, error) {
	var m model.OTPModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	return m.ToEntity(), nil
}

func (repo *otpRepository) Replace(ctx context.Context, challenge *entity.OTPChallenge) error {
	now := time.Now().UTC()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"email": challenge.Email}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to discard previous otp challenge")
	}

	if _, err := repo.coll.InsertOne(ctx, model.OTPModelFromEntity(challenge)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp challenge")
	}

	return nil
}

func (repo *otpRepository) Update(ctx context.Context, challenge *entity.OTPChallenge) error {
	challenge.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"attempts":  challenge.Attempts,
		"verified":  challenge.Verified,
		"updatedAt": challenge.UpdatedAt,
	}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"email": challenge.Email}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update otp challenge")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

func (repo *otpRepository) Delete(ctx context.Context, email string) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp challenge")
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired otp challenges")
	}

	return result.DeletedCount, nil
}
