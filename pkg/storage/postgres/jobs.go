package postgres

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and becomes visible on commit; otherwise it is visible at once.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, errors.New("storage has no job client")
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, errors.Wrapf(err, "could not insert %s job", args.Kind())
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
