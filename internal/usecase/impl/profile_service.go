package impl

import (
	"context"
	"log/slog"

	"influencerhub/config"
	deliverycontext "influencerhub/internal/delivery/context"
	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/usecase"
	"influencerhub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	creatorRepo        repository.CreatorRepository
	brandRepo          repository.BrandRepository
	defaultCountryCode string
	logger             *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	CreatorRepo repository.CreatorRepository
	BrandRepo   repository.BrandRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		creatorRepo:        params.CreatorRepo,
		brandRepo:          params.BrandRepo,
		defaultCountryCode: params.Config.Phone.DefaultCountryCode,
		logger:             params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the caller's role-tagged, password-free profile.
func (srv *profileService) Get(ctx context.Context, userID string, role entity.Role) (any, error) {
	switch role {
	case entity.RoleCreator:
		creator, err := srv.creatorRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCreatorNotFound) {
				return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
			}

			return nil, errors.Wrap(err, "failed to load creator profile")
		}

		return usecase.NewCreatorView(creator), nil
	case entity.RoleBrand:
		brand, err := srv.brandRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
			}

			return nil, errors.Wrap(err, "failed to load brand profile")
		}

		return usecase.NewBrandView(brand), nil
	default:
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
	}
}

// UpdateCreator applies a partial update to a creator profile. Email,
// password and role are not reachable through the input type.
func (srv *profileService) UpdateCreator(ctx context.Context, userID string, input *usecase.UpdateCreatorProfileInput) (*usecase.CreatorView, error) {
	creator, err := srv.creatorRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCreatorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update profile")
		}

		return nil, errors.Wrap(err, "failed to load creator profile")
	}

	applyString(&creator.Name, input.Name)
	applyPhone(&creator.Phone, input.Phone, srv.defaultCountryCode)
	applyPhone(&creator.WhatsappNumber, input.WhatsappNumber, srv.defaultCountryCode)
	applyString(&creator.InstagramProfile, input.InstagramProfile)
	applyInt64(&creator.FollowersCount, input.FollowersCount)
	applyInt64(&creator.AverageReelViews, input.AverageReelViews)
	applyInt64(&creator.PastCollaborations, input.PastCollaborations)
	applyString(&creator.Address, input.Address)
	applyString(&creator.City, input.City)
	applyString(&creator.State, input.State)
	applyString(&creator.Country, input.Country)
	applyString(&creator.CreatorType, input.CreatorType)
	applyString(&creator.YoutubeLink, input.YoutubeLink)
	applyInt64(&creator.YoutubeSubscribers, input.YoutubeSubscribers)
	if input.Pincode != nil {
		if !pincodePattern.MatchString(*input.Pincode) {
			return nil, domainerrors.ErrValidationFailed.WithDetails([]string{"pincode must be 5 or 6 digits"})
		}
		creator.Pincode = *input.Pincode
	}
	if input.ContentNiche != nil {
		creator.ContentNiche = *input.ContentNiche
	}

	if err := srv.creatorRepo.Update(ctx, creator); err != nil {
		srv.log(ctx).Error("Creator profile update failed", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update creator profile")
	}

	return usecase.NewCreatorView(creator), nil
}

// UpdateBrand applies a partial update to a brand profile.
func (srv *profileService) UpdateBrand(ctx context.Context, userID string, input *usecase.UpdateBrandProfileInput) (*usecase.BrandView, error) {
	brand, err := srv.brandRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update profile")
		}

		return nil, errors.Wrap(err, "failed to load brand profile")
	}

	applyString(&brand.Name, input.Name)
	applyPhone(&brand.Phone, input.Phone, srv.defaultCountryCode)
	applyString(&brand.CompanyName, input.CompanyName)
	applyString(&brand.Website, input.Website)
	applyString(&brand.Industry, input.Industry)
	applyString(&brand.Description, input.Description)
	applyString(&brand.Logo, input.Logo)

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		srv.log(ctx).Error("Brand profile update failed", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update brand profile")
	}

	return usecase.NewBrandView(brand), nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

func applyPhone(dst *string, src *string, defaultCountryCode string) {
	if src != nil {
		*dst = util.NormalizePhone(*src, defaultCountryCode)
	}
}
