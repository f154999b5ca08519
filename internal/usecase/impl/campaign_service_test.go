package impl

import (
	"context"
	"testing"
	"time"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaignInput(brandID string) *usecase.CreateCampaignInput {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	return &usecase.CreateCampaignInput{
		BrandID:           brandID,
		Title:             "Monsoon Drop",
		Description:       "Launch reels for the monsoon collection",
		Budget:            50000,
		StartDate:         start,
		EndDate:           start.AddDate(0, 1, 0),
		RequiredNiches:    []string{"fashion"},
		RequiredFollowers: 10000,
	}
}

func TestCampaignService_Create_Success(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)

	campaign, err := svc.Create(context.Background(), validCampaignInput("brand-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, "brand-1", campaign.BrandID)
	assert.Equal(t, entity.CampaignActive, campaign.Status)
	assert.Empty(t, campaign.ApplicantIDs)
}

func TestCampaignService_Create_EndDateMustFollowStartDate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)

	input := validCampaignInput("brand-1")
	input.EndDate = input.StartDate

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCampaignService_Create_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)

	input := validCampaignInput("brand-1")
	input.Status = "archived"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCampaignService_List_ExcludesDraftsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)

	draft := validCampaignInput("brand-1")
	draft.Title = "Hidden Draft"
	draft.Status = string(entity.CampaignDraft)
	_, err = svc.Create(ctx, draft)
	require.NoError(t, err)

	second, err := svc.Create(ctx, validCampaignInput("brand-2"))
	require.NoError(t, err)

	views, err := svc.List(ctx, &usecase.ListCampaignsInput{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
}

func TestCampaignService_List_RejectsDraftStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	draft := validCampaignInput("brand-1")
	draft.Status = string(entity.CampaignDraft)
	_, err := svc.Create(ctx, draft)
	require.NoError(t, err)

	// Asking for drafts explicitly must not bypass the exclusion.
	_, err = svc.List(ctx, &usecase.ListCampaignsInput{Status: "draft"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCampaignService_List_FiltersByBrandAndStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)

	closed := validCampaignInput("brand-2")
	closed.Status = string(entity.CampaignClosed)
	closedCampaign, err := svc.Create(ctx, closed)
	require.NoError(t, err)

	views, err := svc.List(ctx, &usecase.ListCampaignsInput{BrandID: "brand-2", Status: "closed"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, closedCampaign.ID, views[0].ID)
}

func TestCampaignService_List_AnnotatesCreatorApplications(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	applied, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)
	other, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: applied.ID})
	require.NoError(t, err)

	views, err := svc.List(ctx, &usecase.ListCampaignsInput{CreatorID: "creator-1"})
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[string]*usecase.CampaignView{}
	for _, view := range views {
		byID[view.ID] = view
	}
	assert.Equal(t, "applied", byID[applied.ID].ApplicationStatus)
	assert.Empty(t, byID[other.ID].ApplicationStatus)
}

func TestCampaignService_Apply_UnknownCampaign(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)

	_, err := svc.Apply(context.Background(), &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
}

func TestCampaignService_Apply_SecondApplicationConflicts(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	campaign, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)

	app, err := svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: campaign.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationApplied, app.Status)

	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: campaign.ID})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)

	// The applicant set holds the creator exactly once.
	views, err := svc.List(ctx, &usecase.ListCampaignsInput{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"creator-1"}, views[0].ApplicantIDs)
}

func TestCampaignService_ListApplications_CreatorSeesOwn(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	campaign, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: campaign.ID})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-2", CampaignID: campaign.ID})
	require.NoError(t, err)

	views, err := svc.ListApplications(ctx, "creator-1", entity.RoleCreator)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "creator-1", views[0].CreatorID)
	assert.Equal(t, campaign.Title, views[0].CampaignTitle)
	assert.Equal(t, campaign.Budget, views[0].CampaignBudget)
}

func TestCampaignService_ListApplications_BrandSeesAcrossCampaigns(t *testing.T) {
	env := newTestEnv(t)
	svc := env.campaignService(t)
	ctx := context.Background()

	mine, err := svc.Create(ctx, validCampaignInput("brand-1"))
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, validCampaignInput("brand-2"))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: mine.ID})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, &usecase.ApplyInput{CreatorID: "creator-1", CampaignID: theirs.ID})
	require.NoError(t, err)

	views, err := svc.ListApplications(ctx, "brand-1", entity.RoleBrand)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, mine.ID, views[0].CampaignID)
}
