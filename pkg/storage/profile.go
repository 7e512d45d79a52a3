package storage

import (
	"context"
	"portal/pkg/domain"
)

// ProfileStorage persists portal profiles.
type ProfileStorage interface {
	// UpsertProfile inserts the profile or updates email, name and role of an
	// existing one with the same ID. An email already used by another profile
	// yields serrors.ErrConflict.
	UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	// ProfileByID fetches a profile. Returns nil when not found.
	ProfileByID(ctx context.Context, ID domain.UserID) (*domain.Profile, error)
}
