package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"influencerhub/config"
	"influencerhub/internal/delivery/http/middleware"
	"influencerhub/internal/delivery/http/router/handler"
	"influencerhub/internal/delivery/http/validator"
	"influencerhub/internal/infra/auth"
	"influencerhub/internal/infra/persistence/memory"
	"influencerhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureMailer records dispatched OTP codes instead of sending email.
type captureMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *captureMailer) SendCode(_ context.Context, email, code, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.codes == nil {
		m.codes = make(map[string]string)
	}
	m.codes[email] = code

	return nil
}

func (m *captureMailer) codeFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.codes[email]
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*echo.Echo, *captureMailer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-access-secret"
	cfg.SecretKey.Refresh = "router-refresh-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Phone.DefaultCountryCode = "91"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	mailer := &captureMailer{}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    txManager,
		CreatorRepo:  memory.NewCreatorRepository(store),
		BrandRepo:    memory.NewBrandRepository(store),
		Hasher:       auth.NewBcryptHasher(cfg),
		Policy:       auth.NewPasswordPolicy(cfg),
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	otpUC := impl.NewOTPService(impl.OTPServiceParams{
		TxManager: txManager,
		OTPRepo:   memory.NewOTPRepository(store),
		Mailer:    mailer,
		Logger:    logger,
	})
	campaignUC := impl.NewCampaignService(impl.CampaignServiceParams{
		TxManager:    txManager,
		CampaignRepo: memory.NewCampaignRepository(store),
		AppRepo:      memory.NewApplicationRepository(store),
		Logger:       logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		CreatorRepo: memory.NewCreatorRepository(store),
		BrandRepo:   memory.NewBrandRepository(store),
		Config:      cfg,
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(accountUC, otpUC, logger),
		CampaignHandler: handler.NewCampaignHandler(campaignUC, logger),
		UserHandler:     handler.NewUserHandler(profileUC, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e, mailer
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	resp := new(envelope)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), resp))

	return rec, resp
}

func creatorSignupPayload() map[string]any {
	return map[string]any{
		"role":              "creator",
		"name":              "Asha",
		"email":             "asha@example.com",
		"password":          "Sup3rSecret!",
		"phone":             "9876543210",
		"instagramProfile":  "https://instagram.com/asha.codes",
		"instagramUsername": "asha.codes",
		"followersCount":    12000,
		"age":               24,
		"gender":            "female",
		"city":              "Bengaluru",
		"state":             "Karnataka",
		"pincode":           "560001",
		"contentNiche":      []string{"tech"},
		"creatorType":       "micro",
	}
}

func brandSignupPayload() map[string]any {
	return map[string]any{
		"role":        "brand",
		"name":        "Priya",
		"email":       "priya@glowlabs.example",
		"password":    "Sup3rSecret!",
		"phone":       "+91 98111 22333",
		"companyName": "Glow Labs",
		"industry":    "beauty",
	}
}

func signupToken(t *testing.T, e *echo.Echo, payload map[string]any) string {
	t.Helper()

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.AccessToken)

	return data.AccessToken
}

func TestRouter_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec, resp := doJSON(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestRouter_Signup_CreatorFlow(t *testing.T) {
	e, _ := newTestServer(t)

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/signup", "", creatorSignupPayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, resp.Success)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.Contains(t, rec.Body.String(), `"role":"creator"`)
	assert.Contains(t, rec.Body.String(), "+919876543210")
}

func TestRouter_Signup_UnknownRole(t *testing.T) {
	e, _ := newTestServer(t)

	payload := creatorSignupPayload()
	payload["role"] = "admin"

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/signup", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ROLE", resp.Error.Code)
}

func TestRouter_Signup_ValidationDetails(t *testing.T) {
	e, _ := newTestServer(t)

	payload := creatorSignupPayload()
	delete(payload, "name")
	delete(payload, "pincode")

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/signup", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)

	details, ok := resp.Error.Details.([]any)
	require.True(t, ok)
	assert.Contains(t, details, "name is required")
	assert.Contains(t, details, "pincode is required")
}

func TestRouter_Login_WrongPassword(t *testing.T) {
	e, _ := newTestServer(t)
	signupToken(t, e, creatorSignupPayload())

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "asha@example.com",
		"password": "WrongPass1!",
		"role":     "creator",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestRouter_Profile_RequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodGet, "/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/users/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Profile_GetAndUpdate(t *testing.T) {
	e, _ := newTestServer(t)
	token := signupToken(t, e, creatorSignupPayload())

	rec, resp := doJSON(t, e, http.MethodGet, "/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(resp.Data), `"email":"asha@example.com"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec, resp = doJSON(t, e, http.MethodPut, "/users/profile", token, map[string]any{
		"city": "Mumbai",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(resp.Data), `"city":"Mumbai"`)
	assert.Contains(t, string(resp.Data), `"state":"Karnataka"`)
}

func TestRouter_Campaign_CreateRequiresBrandRole(t *testing.T) {
	e, _ := newTestServer(t)
	creatorToken := signupToken(t, e, creatorSignupPayload())

	campaign := map[string]any{
		"title":          "Monsoon Drop",
		"description":    "Launch reels",
		"budget":         50000,
		"startDate":      "2025-07-01T00:00:00Z",
		"endDate":        "2025-08-01T00:00:00Z",
		"requiredNiches": []string{"fashion"},
	}

	rec, _ := doJSON(t, e, http.MethodPost, "/campaigns", "", campaign)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/campaigns", creatorToken, campaign)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Campaign_ApplyFlow(t *testing.T) {
	e, _ := newTestServer(t)
	brandToken := signupToken(t, e, brandSignupPayload())
	creatorToken := signupToken(t, e, creatorSignupPayload())

	rec, resp := doJSON(t, e, http.MethodPost, "/campaigns", brandToken, map[string]any{
		"title":          "Monsoon Drop",
		"description":    "Launch reels",
		"budget":         50000,
		"startDate":      "2025-07-01T00:00:00Z",
		"endDate":        "2025-08-01T00:00:00Z",
		"requiredNiches": []string{"fashion"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var campaign struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &campaign))
	require.NotEmpty(t, campaign.ID)

	rec, _ = doJSON(t, e, http.MethodGet, "/campaigns", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), campaign.ID)

	apply := map[string]any{"campaignId": campaign.ID}

	rec, _ = doJSON(t, e, http.MethodPost, "/campaigns/applications", brandToken, apply)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/campaigns/applications", creatorToken, apply)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, resp = doJSON(t, e, http.MethodPost, "/campaigns/applications", creatorToken, apply)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ALREADY_APPLIED", resp.Error.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/campaigns/applications", creatorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Monsoon Drop")

	rec, _ = doJSON(t, e, http.MethodGet, "/campaigns/applications", brandToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), campaign.ID)
}

func TestRouter_OTPFlow(t *testing.T) {
	e, mailer := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodPost, "/auth/send-otp", "", map[string]any{
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	code := mailer.codeFor("asha@example.com")
	require.Len(t, code, 6)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	rec, resp := doJSON(t, e, http.MethodPost, "/auth/verify-otp", "", map[string]any{
		"email": "asha@example.com",
		"otp":   wrong,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "OTP_INVALID", resp.Error.Code)

	rec, resp = doJSON(t, e, http.MethodPost, "/auth/verify-otp", "", map[string]any{
		"email": "asha@example.com",
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(resp.Data), `"verified":true`)
}
