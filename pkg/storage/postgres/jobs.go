package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"portal/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob inserts a River job through the handle p is bound to. On a
// transactional handle the job only becomes visible once the surrounding
// transaction commits, so an abstract and its extraction job land together.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		res, err = insertTx(ctx, db, args, opts)
	case *sql.DB:
		res, err = insert(ctx, db, args, opts)
	default:
		return false, fmt.Errorf("cannot insert %s job through %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, translate(err, fmt.Sprintf("could not insert %s job", args.Kind()))
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "Job already queued",
			zap.String("kind", args.Kind()),
			zap.Int64("jobID", res.Job.ID),
		)

		return false, nil
	}

	return true, nil
}

func insertTx(ctx context.Context, tx *sql.Tx, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river insert client: %w", err)
	}

	return client.InsertTx(ctx, tx, args, opts)
}

func insert(ctx context.Context, db *sql.DB, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river insert client: %w", err)
	}

	return client.Insert(ctx, args, opts)
}
