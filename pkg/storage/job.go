package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the domain writes of the same
// storage handle. When the handle is transactional the job becomes visible
// only once the transaction commits, so a verification row and its job are
// never observed apart.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. It returns
	// false without an error when the job was skipped as a unique duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
