package postgres_test

import (
	"context"
	"portal/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Activity(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := newUserID()
	reviewer := newUserID()

	stored, err := pg.StoreAbstract(ctx, newAbstract(author, "Logged abstract"))
	require.NoError(t, err)

	require.NoError(t, pg.LogActivity(ctx))
	require.NoError(t, pg.LogActivity(ctx, domain.ActivityLog{
		UserID:     author,
		AbstractID: stored.ID,
		Action:     domain.ActivitySubmitted,
	}))
	require.NoError(t, pg.LogActivity(ctx,
		domain.ActivityLog{
			UserID:     reviewer,
			AbstractID: stored.ID,
			Action:     domain.ActivityReviewed,
			Details:    "approved",
		},
		domain.ActivityLog{
			UserID: reviewer,
			Action: domain.ActivityReExtracted,
		},
	))

	logs, err := pg.AbstractActivity(ctx, stored.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		require.Equal(t, stored.ID, l.AbstractID)
		require.False(t, l.CreatedAt.IsZero())
	}

	limited, err := pg.AbstractActivity(ctx, stored.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}
