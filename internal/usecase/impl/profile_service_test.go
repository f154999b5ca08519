package impl

import (
	"context"
	"encoding/json"
	"testing"

	"influencerhub/internal/domain/entity"
	domainerrors "influencerhub/internal/domain/errors"
	"influencerhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func (env *testEnv) signupCreator(t *testing.T) *usecase.CreatorView {
	t.Helper()

	out, err := env.accountService(t).SignupCreator(context.Background(), validCreatorInput())
	require.NoError(t, err)

	view, ok := out.User.(*usecase.CreatorView)
	require.True(t, ok)

	return view
}

func (env *testEnv) signupBrand(t *testing.T) *usecase.BrandView {
	t.Helper()

	out, err := env.accountService(t).SignupBrand(context.Background(), validBrandInput())
	require.NoError(t, err)

	view, ok := out.User.(*usecase.BrandView)
	require.True(t, ok)

	return view
}

func TestProfileService_Get_CreatorProfile(t *testing.T) {
	env := newTestEnv(t)
	creator := env.signupCreator(t)
	svc := env.profileService(t)

	profile, err := svc.Get(context.Background(), creator.ID, entity.RoleCreator)
	require.NoError(t, err)

	view, ok := profile.(*usecase.CreatorView)
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", view.Email)
	assert.Equal(t, entity.RoleCreator, view.Role)

	payload, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "passwordHash")
	assert.NotContains(t, string(payload), view.PasswordHash)
}

func TestProfileService_Get_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService(t)

	_, err := svc.Get(context.Background(), "missing", entity.RoleCreator)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_Get_RoleScoped(t *testing.T) {
	env := newTestEnv(t)
	creator := env.signupCreator(t)
	svc := env.profileService(t)

	_, err := svc.Get(context.Background(), creator.ID, entity.RoleBrand)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateCreator_PartialFields(t *testing.T) {
	env := newTestEnv(t)
	creator := env.signupCreator(t)
	svc := env.profileService(t)

	view, err := svc.UpdateCreator(context.Background(), creator.ID, &usecase.UpdateCreatorProfileInput{
		City:           ptr("Mumbai"),
		FollowersCount: ptr(int64(42000)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", view.City)
	assert.Equal(t, int64(42000), view.FollowersCount)

	// Fields absent from the input stay untouched.
	assert.Equal(t, creator.Name, view.Name)
	assert.Equal(t, creator.Phone, view.Phone)
	assert.Equal(t, creator.Pincode, view.Pincode)
}

func TestProfileService_UpdateCreator_NormalizesPhone(t *testing.T) {
	env := newTestEnv(t)
	creator := env.signupCreator(t)
	svc := env.profileService(t)

	view, err := svc.UpdateCreator(context.Background(), creator.ID, &usecase.UpdateCreatorProfileInput{
		Phone: ptr("98222 33444"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+919822233444", view.Phone)
}

func TestProfileService_UpdateCreator_InvalidPincode(t *testing.T) {
	env := newTestEnv(t)
	creator := env.signupCreator(t)
	svc := env.profileService(t)

	_, err := svc.UpdateCreator(context.Background(), creator.ID, &usecase.UpdateCreatorProfileInput{
		Pincode: ptr("12ab"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestProfileService_UpdateCreator_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService(t)

	_, err := svc.UpdateCreator(context.Background(), "missing", &usecase.UpdateCreatorProfileInput{
		Name: ptr("Nobody"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateBrand_PartialFields(t *testing.T) {
	env := newTestEnv(t)
	brand := env.signupBrand(t)
	svc := env.profileService(t)

	view, err := svc.UpdateBrand(context.Background(), brand.ID, &usecase.UpdateBrandProfileInput{
		CompanyName: ptr("Glow Labs"),
		Website:     ptr("https://glowlabs.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Glow Labs", view.CompanyName)
	assert.Equal(t, "https://glowlabs.example", view.Website)
	assert.Equal(t, brand.Name, view.Name)
	assert.Equal(t, entity.RoleBrand, view.Role)
}
