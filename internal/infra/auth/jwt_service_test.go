package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerhub/config"
	"influencerhub/internal/domain/entity"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens("user-1", "a@b.com", entity.RoleCreator)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, entity.RoleCreator, claims.Role)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

func TestJWTService_AccessAndRefreshSecretsDiffer(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens("user-1", "a@b.com", entity.RoleBrand)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_ExpiredTokenFailsClosed(t *testing.T) {
	svc := newTestJWTService(t)

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	access, _, err := svc.GenerateTokens("user-1", "a@b.com", entity.RoleCreator)
	require.NoError(t, err)

	// Jump past the access TTL.
	svc.now = func() time.Time { return issued.Add(accessTokenTTL + time.Minute) }

	claims, err := svc.ValidateAccessToken(access)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenLifetimes(t *testing.T) {
	svc := newTestJWTService(t)

	issued := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return issued }

	access, refresh, err := svc.GenerateTokens("user-1", "a@b.com", entity.RoleCreator)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(15*time.Minute).Unix(), accessClaims.ExpiresAt.Unix())

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour).Unix(), refreshClaims.ExpiresAt.Unix())
}

func TestJWTService_MalformedTokenFailsClosed(t *testing.T) {
	svc := newTestJWTService(t)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateAccessToken(tok)
		assert.Error(t, err)
	}
}

func TestJWTService_TamperedTokenFailsClosed(t *testing.T) {
	svc := newTestJWTService(t)

	access, _, err := svc.GenerateTokens("user-1", "a@b.com", entity.RoleCreator)
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}
