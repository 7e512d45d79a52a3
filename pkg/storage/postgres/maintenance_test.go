package postgres_test

import (
	"context"
	"fmt"
	"portal/pkg/domain"
	"portal/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedEntities stores one abstract with entities per status plus one pending
// abstract without them.
func seedEntities(t *testing.T, ctx context.Context, s storage.AbstractStorage) map[domain.AbstractStatus]domain.AbstractID {
	t.Helper()

	author := newUserID()
	ids := make(map[domain.AbstractStatus]domain.AbstractID)
	for _, status := range []domain.AbstractStatus{
		domain.AbstractStatusPending,
		domain.AbstractStatusUnderReview,
		domain.AbstractStatusApproved,
		domain.AbstractStatusRejected,
	} {
		a := newAbstract(author, fmt.Sprintf("With entities %s", status))
		a.Status = status
		a.Entities = &domain.ExtractedEntities{
			Technologies:  []string{"Python"},
			Domains:       []string{"Health"},
			Methodologies: []string{"Survey"},
			Confidence:    0.5,
		}
		stored, err := s.StoreAbstract(ctx, a)
		require.NoError(t, err)
		ids[status] = stored.ID
	}

	_, err := s.StoreAbstract(ctx, newAbstract(author, "Without entities"))
	require.NoError(t, err)

	return ids
}

func TestPgSQL_EntityStats(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedEntities(t, ctx, pg)

	stats, err := pg.EntityStats(ctx)
	require.NoError(t, err)
	require.Equal(t, []storage.EntityStats{
		{Status: domain.AbstractStatusApproved, Total: 1, WithEntities: 1},
		{Status: domain.AbstractStatusPending, Total: 2, WithEntities: 1},
		{Status: domain.AbstractStatusRejected, Total: 1, WithEntities: 1},
		{Status: domain.AbstractStatusUnderReview, Total: 1, WithEntities: 1},
	}, stats)

	remaining, err := pg.RemainingEntities(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, remaining)
}

func TestPgSQL_ClearEntities(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ids := seedEntities(t, ctx, pg)

	n, err := pg.ClearEntities(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pg.ClearEntities(ctx, ids[domain.AbstractStatusPending], ids[domain.AbstractStatusApproved])
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// already cleared rows are not counted twice
	n, err = pg.ClearEntities(ctx, ids[domain.AbstractStatusPending])
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pg.ClearEntitiesByStatus(ctx, domain.AbstractStatusRejected)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	remaining, err := pg.RemainingEntities(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, remaining)

	n, err = pg.ClearAllEntities(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	remaining, err = pg.RemainingEntities(ctx)
	require.NoError(t, err)
	require.Zero(t, remaining)
}
