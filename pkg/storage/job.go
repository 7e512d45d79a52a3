package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue tables living next to
// the portal data, so a job can be inserted in the same transaction as the
// rows it refers to.
//
//	inserted, err := tx.AddJob(ctx, portal.ExtractEntitiesArgs{AbstractID: id}, nil)
type JobStorage interface {
	// AddJob enqueues a job. Inside a transaction the job becomes visible only
	// on commit. The returned bool is false when a unique job with the same
	// arguments was already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
