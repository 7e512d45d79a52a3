package storage

import (
	"context"
	"portal/pkg/domain"
)

// ActivityStorage appends and reads the audit trail.
type ActivityStorage interface {
	// LogActivity appends one or more activity records.
	LogActivity(ctx context.Context, logs ...domain.ActivityLog) error
	// AbstractActivity returns the newest activity records of an abstract, at most limit.
	AbstractActivity(ctx context.Context, ID domain.AbstractID, limit uint) ([]domain.ActivityLog, error)
}
