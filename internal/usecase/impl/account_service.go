// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"influencerhub/config"
	deliverycontext "influencerhub/internal/delivery/context"
	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/domain/service"
	"influencerhub/internal/usecase"
	"influencerhub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var pincodePattern = regexp.MustCompile(`^\d{5,6}$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager          repository.TransactionManager
	creatorRepo        repository.CreatorRepository
	brandRepo          repository.BrandRepository
	hasher             service.PasswordHasher
	policy             service.PasswordPolicy
	tokenService       service.TokenService
	defaultCountryCode string
	logger             *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CreatorRepo  repository.CreatorRepository
	BrandRepo    repository.BrandRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:          params.TxManager,
		creatorRepo:        params.CreatorRepo,
		brandRepo:          params.BrandRepo,
		hasher:             params.Hasher,
		policy:             params.Policy,
		tokenService:       params.TokenService,
		defaultCountryCode: params.Config.Phone.DefaultCountryCode,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupCreator orchestrates the complete creator registration process.
func (srv *accountService) SignupCreator(ctx context.Context, input *usecase.SignupCreatorInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting signup", slog.Any("role", entity.RoleCreator), slog.String("email", email))

	if err := srv.validateCredentials(email, input.Password); err != nil {
		return nil, err
	}
	if !pincodePattern.MatchString(input.Pincode) {
		return nil, domainerrors.ErrValidationFailed.WithDetails([]string{"pincode must be 5 or 6 digits"})
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	creator := srv.buildCreator(input, email, hashedPassword)

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		creatorRepo := repos.CreatorRepo()

		if _, findErr := creatorRepo.FindByEmail(txCtx, creator.Email); findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "creator signup")
		} else if !errors.Is(findErr, repository.ErrCreatorNotFound) {
			return errors.Wrap(findErr, "failed to check creator email uniqueness")
		}

		if _, findErr := creatorRepo.FindByInstagramUsername(txCtx, creator.InstagramUsername); findErr == nil {
			return errors.Wrap(domainerrors.ErrInstagramTaken, "creator signup")
		} else if !errors.Is(findErr, repository.ErrCreatorNotFound) {
			return errors.Wrap(findErr, "failed to check instagram uniqueness")
		}

		if _, findErr := creatorRepo.FindByPhone(txCtx, creator.Phone); findErr == nil {
			return errors.Wrap(domainerrors.ErrPhoneTaken, "creator signup")
		} else if !errors.Is(findErr, repository.ErrCreatorNotFound) {
			return errors.Wrap(findErr, "failed to check phone uniqueness")
		}

		return creatorRepo.Create(txCtx, creator)
	})
	if err != nil {
		srv.log(ctx).Warn("Creator signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute creator signup transaction")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(creator.ID, creator.Email, entity.RoleCreator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after creator signup")
	}

	srv.log(ctx).Debug("Creator signup completed", slog.String("userID", creator.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         usecase.NewCreatorView(creator),
	}, nil
}

// SignupBrand orchestrates the complete brand registration process.
func (srv *accountService) SignupBrand(ctx context.Context, input *usecase.SignupBrandInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting signup", slog.Any("role", entity.RoleBrand), slog.String("email", email))

	if err := srv.validateCredentials(email, input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	brand := &entity.Brand{
		Name:               input.Name,
		Email:              email,
		PasswordHash:       hashedPassword,
		Phone:              util.NormalizePhone(input.Phone, srv.defaultCountryCode),
		CompanyName:        input.CompanyName,
		Website:            input.Website,
		Industry:           input.Industry,
		Description:        input.Description,
		Logo:               input.Logo,
		VerificationStatus: entity.VerificationPending,
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		brandRepo := repos.BrandRepo()

		if _, findErr := brandRepo.FindByEmail(txCtx, brand.Email); findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "brand signup")
		} else if !errors.Is(findErr, repository.ErrBrandNotFound) {
			return errors.Wrap(findErr, "failed to check brand email uniqueness")
		}

		return brandRepo.Create(txCtx, brand)
	})
	if err != nil {
		srv.log(ctx).Warn("Brand signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute brand signup transaction")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(brand.ID, brand.Email, entity.RoleBrand)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after brand signup")
	}

	srv.log(ctx).Debug("Brand signup completed", slog.String("userID", brand.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         usecase.NewBrandView(brand),
	}, nil
}

// Login authenticates an account within its role's collection. A missing
// account and a wrong password produce the same generic error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	role := entity.Role(input.Role)
	srv.log(ctx).Debug("Starting login", slog.Any("role", role), slog.String("email", email))

	if !role.IsSignupRole() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "login")
	}

	var (
		hash   string
		userID string
		view   any
	)
	switch role {
	case entity.RoleCreator:
		creator, err := srv.creatorRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrCreatorNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return nil, errors.Wrap(err, "failed to find creator by email")
		}
		hash, userID, view = creator.PasswordHash, creator.ID, usecase.NewCreatorView(creator)
	case entity.RoleBrand:
		brand, err := srv.brandRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return nil, errors.Wrap(err, "failed to find brand by email")
		}
		hash, userID, view = brand.PasswordHash, brand.ID, usecase.NewBrandView(brand)
	}

	// bcrypt is CPU-bound; check outside any transaction.
	if !srv.hasher.Check(input.Password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, email, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("userID", userID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         view,
	}, nil
}

func (srv *accountService) validateCredentials(email, password string) error {
	if !util.IsValidEmail(email) {
		return errors.Wrap(domainerrors.ErrInvalidEmail, "signup")
	}

	if violations := srv.policy.Validate(password); len(violations) > 0 {
		return domainerrors.ErrPasswordPolicy.WithDetails(violations)
	}

	return nil
}

func (srv *accountService) buildCreator(input *usecase.SignupCreatorInput, email, hashedPassword string) *entity.Creator {
	country := input.Country
	if country == "" {
		country = "India"
	}

	return &entity.Creator{
		Name:               input.Name,
		Email:              email,
		PasswordHash:       hashedPassword,
		Phone:              util.NormalizePhone(input.Phone, srv.defaultCountryCode),
		WhatsappNumber:     util.NormalizePhone(input.WhatsappNumber, srv.defaultCountryCode),
		InstagramProfile:   input.InstagramProfile,
		InstagramUsername:  strings.ToLower(strings.TrimSpace(input.InstagramUsername)),
		FollowersCount:     input.FollowersCount,
		AverageReelViews:   input.AverageReelViews,
		PastCollaborations: input.PastCollaborations,
		Age:                input.Age,
		Gender:             entity.Gender(input.Gender),
		Address:            input.Address,
		City:               input.City,
		State:              input.State,
		Country:            country,
		Pincode:            input.Pincode,
		ContentNiche:       input.ContentNiche,
		CreatorType:        input.CreatorType,
		YoutubeLink:        input.YoutubeLink,
		YoutubeSubscribers: input.YoutubeSubscribers,
		SubscriptionStatus: entity.SubscriptionFree,
		VerificationStatus: entity.VerificationPending,
	}
}
