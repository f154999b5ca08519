// Package model contains the persistence representations of the domain
// entities. Each model mirrors one document collection and converts to and
// from its entity counterpart at the repository boundary.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"influencerhub/internal/domain/entity"
)

// CreatorModel mirrors the 'creators' collection.
type CreatorModel struct {
	ID                 bson.ObjectID `bson:"_id,omitempty"`
	Name               string        `bson:"name"`
	Email              string        `bson:"email"`
	PasswordHash       string        `bson:"passwordHash"`
	Phone              string        `bson:"phone"`
	WhatsappNumber     string        `bson:"whatsappNumber"`
	InstagramProfile   string        `bson:"instagramProfile"`
	InstagramUsername  string        `bson:"instagramUsername"`
	FollowersCount     int64         `bson:"followersCount"`
	AverageReelViews   int64         `bson:"averageReelViews"`
	PastCollaborations int64         `bson:"pastCollaborations"`
	Age                int           `bson:"age"`
	Gender             string        `bson:"gender"`
	Address            string        `bson:"address"`
	City               string        `bson:"city"`
	State              string        `bson:"state"`
	Country            string        `bson:"country"`
	Pincode            string        `bson:"pincode"`
	ContentNiche       []string      `bson:"contentNiche"`
	CreatorType        string        `bson:"creatorType"`
	YoutubeLink        string        `bson:"youtubeLink,omitempty"`
	YoutubeSubscribers int64         `bson:"youtubeSubscribers,omitempty"`
	SubscriptionStatus string        `bson:"subscriptionStatus"`
	VerificationStatus string        `bson:"verificationStatus"`
	CreatedAt          time.Time     `bson:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt"`
}

// CollectionName returns the collection this model is stored in.
func (CreatorModel) CollectionName() string {
	return "creators"
}

// ToEntity converts the persistence model to a domain entity.
func (m *CreatorModel) ToEntity() *entity.Creator {
	return &entity.Creator{
		ID:                 m.ID.Hex(),
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Phone:              m.Phone,
		WhatsappNumber:     m.WhatsappNumber,
		InstagramProfile:   m.InstagramProfile,
		InstagramUsername:  m.InstagramUsername,
		FollowersCount:     m.FollowersCount,
		AverageReelViews:   m.AverageReelViews,
		PastCollaborations: m.PastCollaborations,
		Age:                m.Age,
		Gender:             entity.Gender(m.Gender),
		Address:            m.Address,
		City:               m.City,
		State:              m.State,
		Country:            m.Country,
		Pincode:            m.Pincode,
		ContentNiche:       m.ContentNiche,
		CreatorType:        m.CreatorType,
		YoutubeLink:        m.YoutubeLink,
		YoutubeSubscribers: m.YoutubeSubscribers,
		SubscriptionStatus: entity.SubscriptionStatus(m.SubscriptionStatus),
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// CreatorModelFromEntity converts a domain entity to its persistence model.
// A blank entity ID maps to the zero ObjectID so inserts generate a fresh one.
func CreatorModelFromEntity(e *entity.Creator) (*CreatorModel, error) {
	id, err := objectIDFromHex(e.ID)
	if err != nil {
		return nil, err
	}

	return &CreatorModel{
		ID:                 id,
		Name:               e.Name,
		Email:              e.Email,
		PasswordHash:       e.PasswordHash,
		Phone:              e.Phone,
		WhatsappNumber:     e.WhatsappNumber,
		InstagramProfile:   e.InstagramProfile,
		InstagramUsername:  e.InstagramUsername,
		FollowersCount:     e.FollowersCount,
		AverageReelViews:   e.AverageReelViews,
		PastCollaborations: e.PastCollaborations,
		Age:                e.Age,
		Gender:             string(e.Gender),
		Address:            e.Address,
		City:               e.City,
		State:              e.State,
		Country:            e.Country,
		Pincode:            e.Pincode,
		ContentNiche:       e.ContentNiche,
		CreatorType:        e.CreatorType,
		YoutubeLink:        e.YoutubeLink,
		YoutubeSubscribers: e.YoutubeSubscribers,
		SubscriptionStatus: string(e.SubscriptionStatus),
		VerificationStatus: string(e.VerificationStatus),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}, nil
}

// BrandModel mirrors the 'brands' collection.
type BrandModel struct {
	ID                 bson.ObjectID `bson:"_id,omitempty"`
	Name               string        `bson:"name"`
	Email              string        `bson:"email"`
	PasswordHash       string        `bson:"passwordHash"`
	Phone              string        `bson:"phone"`
	CompanyName        string        `bson:"companyName"`
	Website            string        `bson:"website,omitempty"`
	Industry           string        `bson:"industry"`
	Description        string        `bson:"description"`
	Logo               string        `bson:"logo,omitempty"`
	VerificationStatus string        `bson:"verificationStatus"`
	CreatedAt          time.Time     `bson:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt"`
}

// CollectionName returns the collection this model is stored in.
func (BrandModel) CollectionName() string {
	return "brands"
}

// ToEntity converts the persistence model to a domain entity.
func (m *BrandModel) ToEntity() *entity.Brand {
	return &entity.Brand{
		ID:                 m.ID.Hex(),
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Phone:              m.Phone,
		CompanyName:        m.CompanyName,
		Website:            m.Website,
		Industry:           m.Industry,
		Description:        m.Description,
		Logo:               m.Logo,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// BrandModelFromEntity converts a domain entity to its persistence model.
func BrandModelFromEntity(e *entity.Brand) (*BrandModel, error) {
	id, err := objectIDFromHex(e.ID)
	if err != nil {
		return nil, err
	}

	return &BrandModel{
		ID:                 id,
		Name:               e.Name,
		Email:              e.Email,
		PasswordHash:       e.PasswordHash,
		Phone:              e.Phone,
		CompanyName:        e.CompanyName,
		Website:            e.Website,
		Industry:           e.Industry,
		Description:        e.Description,
		Logo:               e.Logo,
		VerificationStatus: string(e.VerificationStatus),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}, nil
}
