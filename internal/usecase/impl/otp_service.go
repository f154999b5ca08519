package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

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

var otpCodeSpace = big.NewInt(1000000)

// otpService implements the OTPUsecase interface.
type otpService struct {
	txManager repository.TransactionManager
	otpRepo   repository.OTPRepository
	mailer    service.OTPMailer
	logger    *slog.Logger
	now       func() time.Time
}

// OTPServiceParams holds dependencies for otpService, injected by Fx.
type OTPServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OTPRepo   repository.OTPRepository
	Mailer    service.OTPMailer
	Logger    *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	return &otpService{
		txManager: params.TxManager,
		otpRepo:   params.OTPRepo,
		mailer:    params.Mailer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send issues a fresh challenge for the email and dispatches the code. Any
// existing challenge is superseded; a resend inside the cooldown window is
// rejected with the remaining wait.
func (srv *otpService) Send(ctx context.Context, input *usecase.SendOTPInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !util.IsValidEmail(email) {
		return errors.Wrap(domainerrors.ErrInvalidEmail, "send otp")
	}

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp code")
	}

	now := srv.now()
	challenge := &entity.OTPChallenge{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(entity.OTPTTL),
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		otpRepo := repos.OTPRepo()

		existing, findErr := otpRepo.FindByEmail(txCtx, email)
		if findErr != nil && !errors.Is(findErr, repository.ErrOTPNotFound) {
			return errors.Wrap(findErr, "failed to load existing otp challenge")
		}

		if input.IsResend && existing != nil {
			elapsed := now.Sub(existing.CreatedAt)
			if elapsed < entity.OTPResendCooldown {
				wait := int((entity.OTPResendCooldown - elapsed + time.Second - 1) / time.Second)

				return domainerrors.NewResendCooldown(wait)
			}
		}

		return otpRepo.Replace(txCtx, challenge)
	})
	if err != nil {
		srv.log(ctx).Warn("OTP issue failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute otp issue transaction")
	}

	// Dispatch after the challenge is stored. A failed send surfaces as an
	// error but the stored challenge stays redeemable.
	if err := srv.mailer.SendCode(ctx, email, code, strings.TrimSpace(input.UserName)); err != nil {
		srv.log(ctx).Error("OTP dispatch failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDispatchFailed, err.Error())
	}

	srv.log(ctx).Info("OTP sent", slog.String("email", email), slog.Bool("isResend", input.IsResend))

	return nil
}

// Verify redeems a code against the live challenge for the email.
func (srv *otpService) Verify(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		otpRepo := repos.OTPRepo()

		challenge, findErr := otpRepo.FindByEmail(txCtx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOTPNotFound) {
				return errors.Wrap(domainerrors.ErrOTPNotFound, "verify otp")
			}

			return errors.Wrap(findErr, "failed to load otp challenge")
		}

		if challenge.Expired(now) {
			if delErr := otpRepo.Delete(txCtx, email); delErr != nil {
				return errors.Wrap(delErr, "failed to discard expired otp challenge")
			}

			return errors.Wrap(domainerrors.ErrOTPExpired, "verify otp")
		}

		if challenge.Exhausted() {
			if delErr := otpRepo.Delete(txCtx, email); delErr != nil {
				return errors.Wrap(delErr, "failed to discard exhausted otp challenge")
			}

			return errors.Wrap(domainerrors.ErrOTPTooManyAttempts, "verify otp")
		}

		if challenge.Code != input.OTP {
			challenge.Attempts++
			if updErr := otpRepo.Update(txCtx, challenge); updErr != nil {
				return errors.Wrap(updErr, "failed to record otp attempt")
			}

			return errors.Wrap(domainerrors.ErrOTPMismatch, "verify otp")
		}

		challenge.Verified = true

		return otpRepo.Update(txCtx, challenge)
	})
	if err != nil {
		srv.log(ctx).Warn("OTP verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("OTP verified", slog.String("email", email))

	return &usecase.VerifyOTPOutput{
		Message:  "OTP verified successfully",
		Verified: true,
		Email:    email,
	}, nil
}

// IsVerified reports whether a verified challenge exists for the email.
func (srv *otpService) IsVerified(ctx context.Context, email string) (bool, error) {
	challenge, err := srv.otpRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load otp challenge")
	}

	return challenge.Verified, nil
}

// CleanupExpired removes challenges past their expiry.
func (srv *otpService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.otpRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired otp challenges")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired OTP challenges removed", slog.Int64("count", removed))
	}

	return removed, nil
}

// generateCode draws a uniform six-digit zero-padded code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
