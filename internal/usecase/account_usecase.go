// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"influencerhub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupCreatorInput defines the data required to register a creator account.
type SignupCreatorInput struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required"`
	Phone              string   `json:"phone" validate:"required"`
	WhatsappNumber     string   `json:"whatsappNumber"`
	InstagramProfile   string   `json:"instagramProfile" validate:"required"`
	InstagramUsername  string   `json:"instagramUsername" validate:"required"`
	FollowersCount     int64    `json:"followersCount" validate:"gte=0"`
	AverageReelViews   int64    `json:"averageReelViews" validate:"gte=0"`
	PastCollaborations int64    `json:"pastCollaborations" validate:"gte=0"`
	Age                int      `json:"age" validate:"required,gte=18"`
	Gender             string   `json:"gender" validate:"required,oneof=male female other"`
	Address            string   `json:"address"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Country            string   `json:"country"`
	Pincode            string   `json:"pincode" validate:"required"`
	ContentNiche       []string `json:"contentNiche" validate:"required,min=1"`
	CreatorType        string   `json:"creatorType" validate:"required"`
	YoutubeLink        string   `json:"youtubeLink"`
	YoutubeSubscribers int64    `json:"youtubeSubscribers" validate:"gte=0"`
}

// SignupBrandInput defines the data required to register a brand account.
type SignupBrandInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	Website     string `json:"website"`
	Industry    string `json:"industry" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=creator brand"`
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens and a password-free account
// projection after a successful signup or login.
type AuthOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         any    `json:"user"`
}

// CreatorView is the role-tagged, password-free creator projection returned
// by auth and profile endpoints. The password hash never serializes because
// the embedded entity excludes it from JSON.
type CreatorView struct {
	*entity.Creator
	Role entity.Role `json:"role"`
}

// BrandView is the role-tagged, password-free brand projection.
type BrandView struct {
	*entity.Brand
	Role entity.Role `json:"role"`
}

// NewCreatorView wraps a creator entity in its projection.
func NewCreatorView(creator *entity.Creator) *CreatorView {
	return &CreatorView{Creator: creator, Role: entity.RoleCreator}
}

// NewBrandView wraps a brand entity in its projection.
func NewBrandView(brand *entity.Brand) *BrandView {
	return &BrandView{Brand: brand, Role: entity.RoleBrand}
}

// AccountUsecase defines the interface for signup and login operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	SignupCreator(ctx context.Context, input *SignupCreatorInput) (*AuthOutput, error)
	SignupBrand(ctx context.Context, input *SignupBrandInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
