package impl

import (
	"context"
	"log/slog"

	deliverycontext "influencerhub/internal/delivery/context"
	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/domain/repository"
	"influencerhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicListingLimit caps the public campaign listing.
const publicListingLimit = 50

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	txManager    repository.TransactionManager
	campaignRepo repository.CampaignRepository
	appRepo      repository.ApplicationRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for campaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CampaignRepo repository.CampaignRepository
	AppRepo      repository.ApplicationRepository
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		txManager:    params.TxManager,
		campaignRepo: params.CampaignRepo,
		appRepo:      params.AppRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new campaign owned by the given brand.
func (srv *campaignService) Create(ctx context.Context, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails([]string{"endDate must be after startDate"})
	}

	status := entity.CampaignStatus(input.Status)
	if input.Status == "" {
		status = entity.CampaignActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails([]string{"invalid campaign status"})
	}

	campaign := &entity.Campaign{
		BrandID:           input.BrandID,
		Title:             input.Title,
		Description:       input.Description,
		Budget:            input.Budget,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		RequiredNiches:    input.RequiredNiches,
		RequiredFollowers: input.RequiredFollowers,
		Status:            status,
	}

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Campaign creation failed", slog.String("brandID", input.BrandID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create campaign")
	}

	srv.log(ctx).Info("Campaign created", slog.String("campaignID", campaign.ID), slog.String("brandID", campaign.BrandID))

	return campaign, nil
}

// List returns non-draft campaigns newest first, annotated with the given
// creator's application status when a creator ID is supplied. Drafts are
// never listed, so a draft status filter is rejected outright.
func (srv *campaignService) List(ctx context.Context, input *usecase.ListCampaignsInput) ([]*usecase.CampaignView, error) {
	if entity.CampaignStatus(input.Status) == entity.CampaignDraft {
		return nil, domainerrors.ErrValidationFailed.WithDetails([]string{"draft campaigns are not listable"})
	}

	filter := repository.CampaignFilter{
		BrandID: input.BrandID,
		Status:  entity.CampaignStatus(input.Status),
		Limit:   publicListingLimit,
	}

	campaigns, err := srv.campaignRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	views := make([]*usecase.CampaignView, 0, len(campaigns))
	for _, campaign := range campaigns {
		views = append(views, &usecase.CampaignView{Campaign: campaign})
	}

	if input.CreatorID == "" || len(views) == 0 {
		return views, nil
	}

	campaignIDs := make([]string, 0, len(views))
	for _, view := range views {
		campaignIDs = append(campaignIDs, view.ID)
	}

	apps, err := srv.appRepo.ListByCreatorAndCampaignIDs(ctx, input.CreatorID, campaignIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to annotate campaigns with applications")
	}

	statusByCampaign := make(map[string]entity.ApplicationStatus, len(apps))
	for _, app := range apps {
		statusByCampaign[app.CampaignID] = app.Status
	}
	for _, view := range views {
		if status, ok := statusByCampaign[view.ID]; ok {
			view.ApplicationStatus = string(status)
		}
	}

	return views, nil
}

// Apply records a creator's application. The application insert and the
// campaign applicant-set update happen in one transaction.
func (srv *campaignService) Apply(ctx context.Context, input *usecase.ApplyInput) (*entity.CampaignApplication, error) {
	application := &entity.CampaignApplication{
		CampaignID: input.CampaignID,
		CreatorID:  input.CreatorID,
		Status:     entity.ApplicationApplied,
	}

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		campaignRepo := repos.CampaignRepo()
		appRepo := repos.ApplicationRepo()

		if _, findErr := campaignRepo.FindByID(txCtx, input.CampaignID); findErr != nil {
			if errors.Is(findErr, repository.ErrCampaignNotFound) {
				return errors.Wrap(domainerrors.ErrCampaignNotFound, "apply")
			}

			return errors.Wrap(findErr, "failed to load campaign")
		}

		_, findErr := appRepo.FindByCampaignAndCreator(txCtx, input.CampaignID, input.CreatorID)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAlreadyApplied, "apply")
		}
		if !errors.Is(findErr, repository.ErrApplicationNotFound) {
			return errors.Wrap(findErr, "failed to check existing application")
		}

		if createErr := appRepo.Create(txCtx, application); createErr != nil {
			return errors.Wrap(createErr, "failed to create application")
		}

		return campaignRepo.AddApplicant(txCtx, input.CampaignID, input.CreatorID)
	})
	if err != nil {
		srv.log(ctx).Warn("Campaign application failed",
			slog.String("campaignID", input.CampaignID),
			slog.String("creatorID", input.CreatorID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute application transaction")
	}

	srv.log(ctx).Info("Campaign application recorded",
		slog.String("campaignID", input.CampaignID),
		slog.String("creatorID", input.CreatorID))

	return application, nil
}

// ListApplications returns the caller's applications annotated with campaign
// summary fields.
func (srv *campaignService) ListApplications(ctx context.Context, userID string, role entity.Role) ([]*usecase.ApplicationView, error) {
	switch role {
	case entity.RoleCreator:
		return srv.listCreatorApplications(ctx, userID)
	case entity.RoleBrand:
		return srv.listBrandApplications(ctx, userID)
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "list applications")
	}
}

func (srv *campaignService) listCreatorApplications(ctx context.Context, creatorID string) ([]*usecase.ApplicationView, error) {
	apps, err := srv.appRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creator applications")
	}

	campaignByID := make(map[string]*entity.Campaign)
	views := make([]*usecase.ApplicationView, 0, len(apps))
	for _, app := range apps {
		campaign, ok := campaignByID[app.CampaignID]
		if !ok {
			campaign, err = srv.campaignRepo.FindByID(ctx, app.CampaignID)
			if err != nil && !errors.Is(err, repository.ErrCampaignNotFound) {
				return nil, errors.Wrap(err, "failed to load campaign for application")
			}
			campaignByID[app.CampaignID] = campaign
		}
		views = append(views, newApplicationView(app, campaign))
	}

	return views, nil
}

func (srv *campaignService) listBrandApplications(ctx context.Context, brandID string) ([]*usecase.ApplicationView, error) {
	campaigns, err := srv.campaignRepo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brand campaigns")
	}
	if len(campaigns) == 0 {
		return []*usecase.ApplicationView{}, nil
	}

	campaignByID := make(map[string]*entity.Campaign, len(campaigns))
	campaignIDs := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignByID[campaign.ID] = campaign
		campaignIDs = append(campaignIDs, campaign.ID)
	}

	apps, err := srv.appRepo.ListByCampaignIDs(ctx, campaignIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications for brand campaigns")
	}

	views := make([]*usecase.ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, newApplicationView(app, campaignByID[app.CampaignID]))
	}

	return views, nil
}

func newApplicationView(app *entity.CampaignApplication, campaign *entity.Campaign) *usecase.ApplicationView {
	view := &usecase.ApplicationView{
		ID:              app.ID,
		CampaignID:      app.CampaignID,
		CreatorID:       app.CreatorID,
		Status:          app.Status,
		SubmittedAssets: app.SubmittedAssets,
		SubmissionDate:  app.SubmissionDate,
		ApprovalDate:    app.ApprovalDate,
		CreatedAt:       app.CreatedAt,
	}
	if campaign != nil {
		view.CampaignTitle = campaign.Title
		view.CampaignBudget = campaign.Budget
		view.CampaignStatus = campaign.Status
	}

	return view
}
