package storage

import (
	"context"
	"portal/pkg/domain"
	"time"
)

// AbstractUpdates describes a set of optional changes applied to an existing
// abstract. Zero-valued fields are left untouched.
type AbstractUpdates struct {
	// Status is the new lifecycle status.
	Status domain.AbstractStatus
	// Entities, when provided, replaces the stored extraction result.
	Entities *domain.ExtractedEntities
	// ClearEntities resets the stored extraction result to NULL. It wins over Entities.
	ClearEntities bool
	// Review, when provided, records the reviewer, time and feedback.
	Review *domain.Review
	// ExpectStatus guards the update: when set, the row is only updated if its
	// current status equals this value. A guarded update that does not match
	// behaves as not found.
	ExpectStatus domain.AbstractStatus
}

// AbstractFilter narrows a listing of abstracts.
type AbstractFilter struct {
	// Status filters by lifecycle status when non-empty.
	Status domain.AbstractStatus
	// AuthorID filters by author when non-nil.
	AuthorID *domain.UserID
	// Cursor returns abstracts created strictly before it when non-zero.
	Cursor time.Time
	// Limit caps the page size.
	Limit uint
}

// AbstractPage groups a page of abstracts together with an optional
// NextCursor used for pagination.
type AbstractPage struct {
	// Abstracts contains the current page ordered by creation time, newest first.
	Abstracts []domain.Abstract
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// AbstractStorage defines persistence operations for abstracts. Soft-deleted
// rows are invisible to every method.
type AbstractStorage interface {
	// StoreAbstract inserts an abstract and returns the stored row including
	// generated fields. A duplicate title yields serrors.ErrConflict.
	StoreAbstract(ctx context.Context, abstract domain.Abstract) (*domain.Abstract, error)
	// AbstractByID fetches an abstract by its ID. Returns nil when not found.
	AbstractByID(ctx context.Context, ID domain.AbstractID) (*domain.Abstract, error)
	// Abstracts returns a page of abstracts matching filter.
	Abstracts(ctx context.Context, filter AbstractFilter) (AbstractPage, error)
	// UpdateAbstract applies updates to a single abstract, sets updated_at and
	// returns the updated row, or nil when it was not found.
	UpdateAbstract(ctx context.Context, ID domain.AbstractID, updates AbstractUpdates) (*domain.Abstract, error)
	// DeleteAbstract soft-deletes an abstract and returns it, or nil when it was not found.
	DeleteAbstract(ctx context.Context, ID domain.AbstractID) (*domain.Abstract, error)
	// StatusCounts returns the number of abstracts per status.
	StatusCounts(ctx context.Context) (map[domain.AbstractStatus]int64, error)
	// EntitiesByStatus returns the extraction results of every abstract in the
	// given status that has one.
	EntitiesByStatus(ctx context.Context, status domain.AbstractStatus) ([]domain.ExtractedEntities, error)
}
