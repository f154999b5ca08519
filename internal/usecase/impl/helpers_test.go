package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"influencerhub/config"
	"influencerhub/internal/domain/service"
	"influencerhub/internal/infra/auth"
	"influencerhub/internal/infra/persistence/memory"
	"influencerhub/internal/usecase"

	"github.com/stretchr/testify/require"
)

// testEnv bundles an in-memory store with real domain services so the
// usecases under test run against the full stack minus external systems.
type testEnv struct {
	store  *memory.Store
	mailer *stubMailer
	cfg    *config.Config
	logger *slog.Logger

	// clock is the pinned time returned by every now func in the env.
	clock time.Time
	mu    sync.Mutex
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:  memory.NewStore(),
		mailer: &stubMailer{},
		cfg: &config.Config{
			// MinCost keeps bcrypt fast in tests.
			Auth: &config.AuthConfig{BcryptCost: 4},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	env.cfg.Phone.DefaultCountryCode = "91"
	env.cfg.SecretKey.Access = "test-access-secret"
	env.cfg.SecretKey.Refresh = "test-refresh-secret"
	env.store.Now = env.now

	return env
}

func (env *testEnv) now() time.Time {
	env.mu.Lock()
	defer env.mu.Unlock()

	return env.clock
}

func (env *testEnv) advance(d time.Duration) {
	env.mu.Lock()
	defer env.mu.Unlock()

	env.clock = env.clock.Add(d)
}

func (env *testEnv) tokenService(t *testing.T) service.TokenService {
	t.Helper()

	tokenService, err := auth.NewJWTService(env.cfg)
	require.NoError(t, err)

	return tokenService
}

func (env *testEnv) accountService(t *testing.T) usecase.AccountUsecase {
	t.Helper()

	return NewAccountService(AccountServiceParams{
		TxManager:    memory.NewTransactionManager(env.store),
		CreatorRepo:  memory.NewCreatorRepository(env.store),
		BrandRepo:    memory.NewBrandRepository(env.store),
		Hasher:       auth.NewBcryptHasher(env.cfg),
		Policy:       auth.NewPasswordPolicy(env.cfg),
		TokenService: env.tokenService(t),
		Config:       env.cfg,
		Logger:       env.logger,
	})
}

func (env *testEnv) otpService(t *testing.T) usecase.OTPUsecase {
	t.Helper()

	svc := NewOTPService(OTPServiceParams{
		TxManager: memory.NewTransactionManager(env.store),
		OTPRepo:   memory.NewOTPRepository(env.store),
		Mailer:    env.mailer,
		Logger:    env.logger,
	})
	svc.(*otpService).now = env.now

	return svc
}

func (env *testEnv) campaignService(t *testing.T) usecase.CampaignUsecase {
	t.Helper()

	return NewCampaignService(CampaignServiceParams{
		TxManager:    memory.NewTransactionManager(env.store),
		CampaignRepo: memory.NewCampaignRepository(env.store),
		AppRepo:      memory.NewApplicationRepository(env.store),
		Logger:       env.logger,
	})
}

func (env *testEnv) profileService(t *testing.T) usecase.ProfileUsecase {
	t.Helper()

	return NewProfileService(ProfileServiceParams{
		CreatorRepo: memory.NewCreatorRepository(env.store),
		BrandRepo:   memory.NewBrandRepository(env.store),
		Config:      env.cfg,
		Logger:      env.logger,
	})
}

// stubMailer records sent codes and can be told to fail the next dispatch.
type stubMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	failNext error
}

type sentMail struct {
	email string
	code  string
	name  string
}

func (m *stubMailer) SendCode(_ context.Context, email, code, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil

		return err
	}

	m.sent = append(m.sent, sentMail{email: email, code: code, name: displayName})

	return nil
}

func (m *stubMailer) lastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return ""
	}

	return m.sent[len(m.sent)-1].code
}

func (m *stubMailer) lastName() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return ""
	}

	return m.sent[len(m.sent)-1].name
}

func (m *stubMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

func validCreatorInput() *usecase.SignupCreatorInput {
	return &usecase.SignupCreatorInput{
		Name:              "Asha Rao",
		Email:             "Asha@Example.com",
		Password:          "Sup3rSecret!",
		Phone:             "9876543210",
		WhatsappNumber:    "9876543210",
		InstagramProfile:  "https://instagram.com/asha.codes",
		InstagramUsername: "Asha.Codes",
		FollowersCount:    120000,
		AverageReelViews:  45000,
		Age:               24,
		Gender:            "female",
		City:              "Bengaluru",
		State:             "Karnataka",
		Pincode:           "560001",
		ContentNiche:      []string{"tech", "lifestyle"},
		CreatorType:       "reel",
	}
}

func validBrandInput() *usecase.SignupBrandInput {
	return &usecase.SignupBrandInput{
		Name:        "Priya Shah",
		Email:       "contact@nimbus.example",
		Password:    "Sup3rSecret!",
		Phone:       "+91 98111 22333",
		CompanyName: "Nimbus Wear",
		Industry:    "apparel",
		Description: "Sustainable streetwear",
	}
}
