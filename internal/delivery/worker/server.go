// Package worker hosts the background cleanup surface. The document store's
// TTL index removes expired OTP challenges on its own schedule; this worker
// keeps the in-process count visible and covers stores without TTL support.
package worker

import (
	"context"
	"log/slog"
	"time"

	"influencerhub/internal/delivery"
	"influencerhub/internal/usecase"

	"go.uber.org/fx"
)

// cleanupInterval is how often expired OTP challenges are swept.
const cleanupInterval = 10 * time.Minute

type cleanupWorker struct {
	logger *slog.Logger
	otpUC  usecase.OTPUsecase
	done   chan struct{}
}

// ServerParams holds dependencies for the cleanup worker
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	OTPUC  usecase.OTPUsecase
}

// NewServer creates the OTP cleanup worker.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	worker := &cleanupWorker{
		logger: params.Logger,
		otpUC:  params.OTPUC,
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: worker.stop,
	})

	return worker, nil
}

// Serve sweeps expired challenges on a fixed interval until stopped.
func (w *cleanupWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting OTP cleanup worker", slog.Duration("interval", cleanupInterval))

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *cleanupWorker) sweep(ctx context.Context) {
	removed, err := w.otpUC.CleanupExpired(ctx)
	if err != nil {
		w.logger.Error("OTP cleanup sweep failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		w.logger.Info("OTP cleanup sweep finished", slog.Int64("removed", removed))
	}
}

func (w *cleanupWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down OTP cleanup worker")
	close(w.done)

	return nil
}
