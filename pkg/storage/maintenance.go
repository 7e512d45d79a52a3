package storage

import (
	"context"
	"portal/pkg/domain"
)

// EntityStats summarizes how many abstracts of a status carry an extraction result.
type EntityStats struct {
	Status       domain.AbstractStatus
	Total        int64
	WithEntities int64
}

// MaintenanceStorage exposes bulk operations on stored extraction results,
// used to reset entities before a taxonomy change is rolled out.
type MaintenanceStorage interface {
	// EntityStats returns per-status statistics ordered by status.
	EntityStats(ctx context.Context) ([]EntityStats, error)
	// ClearEntities resets the extraction result of the given abstracts and
	// returns how many rows changed.
	ClearEntities(ctx context.Context, IDs ...domain.AbstractID) (int64, error)
	// ClearEntitiesByStatus resets the extraction result of every abstract in status.
	ClearEntitiesByStatus(ctx context.Context, status domain.AbstractStatus) (int64, error)
	// ClearAllEntities resets every extraction result.
	ClearAllEntities(ctx context.Context) (int64, error)
	// RemainingEntities counts abstracts that still carry an extraction result.
	RemainingEntities(ctx context.Context) (int64, error)
}
