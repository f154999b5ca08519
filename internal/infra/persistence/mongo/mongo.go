// Package mongo contains the concrete implementation of the persistence layer
// backed by a MongoDB document store.
package mongo

import (
	"context"
	"log/slog"

	"influencerhub/config"
	"influencerhub/internal/domain/lifecycle"
	"influencerhub/internal/errors"
	"influencerhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and manages the client lifecycle.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is not configured")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database name is not configured")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}

			params.Logger.LogAttrs(ctx, slog.LevelInfo, "MongoDB connected",
				slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// ensureIndexes creates the unique and TTL indexes the repositories rely on.
// Index creation is idempotent.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	creatorIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "instagramUsername", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
	}
	if _, err := db.Collection(model.CreatorModel{}.CollectionName()).Indexes().CreateMany(ctx, creatorIndexes); err != nil {
		return errors.Wrap(err, "creator indexes")
	}

	brandIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	if _, err := db.Collection(model.BrandModel{}.CollectionName()).Indexes().CreateMany(ctx, brandIndexes); err != nil {
		return errors.Wrap(err, "brand indexes")
	}

	campaignIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "brandId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(model.CampaignModel{}.CollectionName()).Indexes().CreateMany(ctx, campaignIndexes); err != nil {
		return errors.Wrap(err, "campaign indexes")
	}

	applicationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "campaignId", Value: 1}, {Key: "creatorId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "creatorId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(model.ApplicationModel{}.CollectionName()).Indexes().CreateMany(ctx, applicationIndexes); err != nil {
		return errors.Wrap(err, "application indexes")
	}

	otpIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		// TTL sweep keyed directly on the expiry timestamp.
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}
	if _, err := db.Collection(model.OTPModel{}.CollectionName()).Indexes().CreateMany(ctx, otpIndexes); err != nil {
		return errors.Wrap(err, "otp indexes")
	}

	return nil
}
