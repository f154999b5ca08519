package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"influencerhub/internal/domain/entity"
)

// OTPModel mirrors the 'otps' collection. The email field carries a unique
// index and expiresAt carries a TTL index for background cleanup.
type OTPModel struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Code      string        `bson:"code"`
	ExpiresAt time.Time     `bson:"expiresAt"`
	Attempts  int           `bson:"attempts"`
	Verified  bool          `bson:"verified"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

// CollectionName returns the collection this model is stored in.
func (OTPModel) CollectionName() string {
	return "otps"
}

// ToEntity converts the persistence model to a domain entity.
func (m *OTPModel) ToEntity() *entity.OTPChallenge {
	return &entity.OTPChallenge{
		Email:     m.Email,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		Attempts:  m.Attempts,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// OTPModelFromEntity converts a domain entity to its persistence model.
func OTPModelFromEntity(e *entity.OTPChallenge) *OTPModel {
	return &OTPModel{
		Email:     e.Email,
		Code:      e.Code,
		ExpiresAt: e.ExpiresAt,
		Attempts:  e.Attempts,
		Verified:  e.Verified,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
