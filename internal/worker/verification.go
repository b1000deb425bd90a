package worker

import (
	"context"
	"passportmrz/internal/verifier"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/serrors"
	"time"

	"github.com/go-faster/errors"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// VerificationWorker is a River worker that completes submitted
// verifications through a verifier.Verifier.
//
// Jobs that can never succeed are cancelled instead of retried: the
// verification is gone, is no longer pending or holds input that violates the
// MRZ contract. Every other error is returned so River retries the job.
type VerificationWorker struct {
	river.WorkerDefaults[verifier.JobArgs]

	verifier verifier.Verifier
	timeout  time.Duration
}

// NewVerificationWorker constructs a VerificationWorker. A zero timeout keeps
// River's default job timeout.
func NewVerificationWorker(verifier verifier.Verifier, timeout time.Duration) *VerificationWorker {
	return &VerificationWorker{
		verifier: verifier,
		timeout:  timeout,
	}
}

// Timeout returns the configured per-job timeout.
func (w *VerificationWorker) Timeout(*river.Job[verifier.JobArgs]) time.Duration {
	return w.timeout
}

// Work processes a single verification job.
func (w *VerificationWorker) Work(ctx context.Context, job *river.Job[verifier.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("verificationID", job.Args.ID))

	if _, err := w.verifier.Process(ctx, job.Args.ID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) ||
			errors.Is(err, serrors.ErrConflict) ||
			errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "cancelling verification job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing verification", zap.Error(err))

		return errors.Wrap(err, "could not process verification")
	}

	logger.Info(ctx, "verification processed successfully")

	return nil
}
