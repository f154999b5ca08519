// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"influencerhub/internal/domain/entity"
)

// ErrCreatorNotFound is returned when no creator matches the query.
var ErrCreatorNotFound = errors.New("creator not found")

// ErrBrandNotFound is returned when no brand matches the query.
var ErrBrandNotFound = errors.New("brand not found")

// CreatorRepository defines the standard operations for creator persistence.
// Email and instagram username lookups are case-insensitive; implementations
// store both lower-cased.
type CreatorRepository interface {
	// FindByID retrieves a single creator by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.Creator, error)

	// FindByEmail retrieves a single creator by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Creator, error)

	// FindByInstagramUsername retrieves a single creator by their instagram handle.
	FindByInstagramUsername(ctx context.Context, username string) (*entity.Creator, error)

	// FindByPhone retrieves a single creator by their normalized phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Creator, error)

	// Create persists a new creator and assigns its ID and timestamps.
	Create(ctx context.Context, creator *entity.Creator) error

	// Update modifies an existing creator record.
	Update(ctx context.Context, creator *entity.Creator) error
}

// BrandRepository defines the standard operations for brand persistence.
type BrandRepository interface {
	// FindByID retrieves a single brand by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.Brand, error)

	// FindByEmail retrieves a single brand by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Brand, error)

	// Create persists a new brand and assigns its ID and timestamps.
	Create(ctx context.Context, brand *entity.Brand) error

	// Update modifies an existing brand record.
	Update(ctx context.Context, brand *entity.Brand) error
}
