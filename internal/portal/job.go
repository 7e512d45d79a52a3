package portal

import (
	"portal/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ExtractEntitiesArgs contains the arguments for an entity extraction job
// submitted to River. The abstract ID is the unique key so an abstract never
// has two live extraction jobs.
type ExtractEntitiesArgs struct {
	AbstractID domain.AbstractID `json:"abstract_id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the extraction worker.
func (args ExtractEntitiesArgs) Kind() string { return "ExtractEntitiesJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Completed jobs are not part of the unique states so an explicit
// re-extraction always runs again.
func (args ExtractEntitiesArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
