package worker

import (
	"context"
	"errors"
	"fmt"
	"portal/internal/portal"
	"portal/pkg/logger"
	"portal/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExtractionWorker is a River worker that extracts entities of a stored
// abstract through portal.Portal.ApplyExtraction.
//
// Provider outages never fail a job: the classifier falls back to the local
// taxonomy. A job is only retried for storage errors and is cancelled when
// its abstract no longer exists.
type ExtractionWorker struct {
	river.WorkerDefaults[portal.ExtractEntitiesArgs]

	portal portal.Portal
}

// NewExtractionWorker constructs an ExtractionWorker using the provided portal.
func NewExtractionWorker(portal portal.Portal) *ExtractionWorker {
	return &ExtractionWorker{portal: portal}
}

func (w *ExtractionWorker) Work(ctx context.Context, job *river.Job[portal.ExtractEntitiesArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("abstractID", job.Args.AbstractID))

	if _, err := w.portal.ApplyExtraction(ctx, job.Args.AbstractID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "abstract is gone, cancelling extraction")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in extracting entities", zap.Error(err))

		return fmt.Errorf("could not extract entities: %w", err)
	}

	return nil
}
