// Package worker runs the River client that processes verification jobs.
package worker

import (
	"context"
	"passportmrz/internal/config"
	"passportmrz/internal/verifier"
	"passportmrz/pkg/logger"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the verification job processor.
type Options struct {
	// Workers is the number of jobs processed concurrently.
	Workers int
	// JobTimeout bounds a single job. Zero uses River's default.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:    cfg.Verification.Workers,
		JobTimeout: cfg.Verification.JobTimeout,
	}
}

// Start registers the verification worker and starts a River client
// processing the default queue. The caller stops it with Stop.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	verifier verifier.Verifier,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewVerificationWorker(verifier, options.JobTimeout))

	maxWorkers := options.Workers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create river queue client")
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "could not start river queue client")
	}

	return riverClient, nil
}
