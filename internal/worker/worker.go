// Package worker runs the background jobs of the portal on River.
package worker

import (
	"context"
	"fmt"
	"portal/internal/portal"
	"portal/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const defaultMaxWorkers = 10

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds a single job run; zero keeps River's default.
	JobTimeout time.Duration
}

// NewWorkers registers every portal worker.
func NewWorkers(p portal.Portal) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewExtractionWorker(p))

	return workers
}

// Start creates a River client processing portal jobs on the default queue
// and starts it.
func Start(ctx context.Context, dbPool *pgxpool.Pool, p portal.Portal, options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:    NewWorkers(p),
		JobTimeout: options.JobTimeout,
		Logger:     logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
