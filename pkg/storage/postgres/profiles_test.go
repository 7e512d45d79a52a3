package postgres_test

import (
	"context"
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertProfile(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	id := newUserID()

	created, err := pg.UpsertProfile(ctx, domain.Profile{
		ID:       id,
		Email:    "amina@example.edu",
		FullName: "Amina Otieno",
		Role:     domain.RoleStudent,
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.Equal(t, domain.RoleStudent, created.Role)
	require.False(t, created.CreatedAt.IsZero())
	require.True(t, created.UpdatedAt.IsZero())

	updated, err := pg.UpsertProfile(ctx, domain.Profile{
		ID:       id,
		Email:    "amina@example.edu",
		FullName: "Dr. Amina Otieno",
		Role:     domain.RoleFaculty,
	})
	require.NoError(t, err)
	require.Equal(t, "Dr. Amina Otieno", updated.FullName)
	require.Equal(t, domain.RoleFaculty, updated.Role)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.IsZero())

	got, err := pg.ProfileByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	missing, err := pg.ProfileByID(ctx, newUserID())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpsertProfile_duplicateEmail(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := pg.UpsertProfile(ctx, domain.Profile{ID: newUserID(), Email: "brian@example.edu", Role: domain.RoleStudent})
	require.NoError(t, err)

	_, err = pg.UpsertProfile(ctx, domain.Profile{ID: newUserID(), Email: "Brian@Example.edu", Role: domain.RoleStudent})
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Contains(t, err.Error(), "a profile with this email already exists")
}
