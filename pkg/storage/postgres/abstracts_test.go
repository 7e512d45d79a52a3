package postgres_test

import (
	"context"
	"fmt"
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"portal/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreAbstract(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := newUserID()

	in := newAbstract(author, "Crop disease detection")
	in.Status = ""
	stored, err := pg.StoreAbstract(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, domain.AbstractStatusPending, stored.Status)
	require.Equal(t, in.Authors, stored.Authors)
	require.Equal(t, in.Keywords, stored.Keywords)
	require.Nil(t, stored.Entities)
	require.Nil(t, stored.Review)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pg.AbstractByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Title, got.Title)
	require.Equal(t, stored.Body, got.Body)

	missing, err := pg.AbstractByID(ctx, domain.AbstractID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_StoreAbstract_emptyLists(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	in := newAbstract(newUserID(), "No keywords")
	in.Keywords = nil
	in.Authors = nil

	stored, err := pg.StoreAbstract(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, []string{}, stored.Keywords)
	require.Equal(t, []string{}, stored.Authors)
}

func TestPgSQL_StoreAbstract_duplicateTitle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first, err := pg.StoreAbstract(ctx, newAbstract(newUserID(), "Smart Irrigation"))
	require.NoError(t, err)

	_, err = pg.StoreAbstract(ctx, newAbstract(newUserID(), "smart irrigation"))
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Contains(t, err.Error(), "an abstract with this title already exists")

	// a deleted abstract frees its title
	_, err = pg.DeleteAbstract(ctx, first.ID)
	require.NoError(t, err)
	_, err = pg.StoreAbstract(ctx, newAbstract(newUserID(), "Smart Irrigation"))
	require.NoError(t, err)
}

func TestPgSQL_Abstracts_pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := newUserID()
	other := newUserID()

	var titles []string
	for i := range 5 {
		title := fmt.Sprintf("Abstract %d", i)
		_, err := pg.StoreAbstract(ctx, newAbstract(author, title))
		require.NoError(t, err)
		titles = append(titles, title)
		time.Sleep(5 * time.Millisecond)
	}
	_, err := pg.StoreAbstract(ctx, newAbstract(other, "Someone else"))
	require.NoError(t, err)

	page, err := pg.Abstracts(ctx, storage.AbstractFilter{AuthorID: &author, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Abstracts, 2)
	require.Equal(t, titles[4], page.Abstracts[0].Title)
	require.Equal(t, titles[3], page.Abstracts[1].Title)
	require.NotNil(t, page.NextCursor)

	page, err = pg.Abstracts(ctx, storage.AbstractFilter{AuthorID: &author, Limit: 2, Cursor: *page.NextCursor})
	require.NoError(t, err)
	require.Len(t, page.Abstracts, 2)
	require.Equal(t, titles[2], page.Abstracts[0].Title)
	require.NotNil(t, page.NextCursor)

	page, err = pg.Abstracts(ctx, storage.AbstractFilter{AuthorID: &author, Limit: 2, Cursor: *page.NextCursor})
	require.NoError(t, err)
	require.Len(t, page.Abstracts, 1)
	require.Equal(t, titles[0], page.Abstracts[0].Title)
	require.Nil(t, page.NextCursor)

	all, err := pg.Abstracts(ctx, storage.AbstractFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all.Abstracts, 6)
	require.Nil(t, all.NextCursor)
}

func TestPgSQL_Abstracts_statusFilter(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := newUserID()

	pending, err := pg.StoreAbstract(ctx, newAbstract(author, "Pending one"))
	require.NoError(t, err)
	approved := newAbstract(author, "Approved one")
	approved.Status = domain.AbstractStatusApproved
	_, err = pg.StoreAbstract(ctx, approved)
	require.NoError(t, err)

	page, err := pg.Abstracts(ctx, storage.AbstractFilter{Status: domain.AbstractStatusPending, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Abstracts, 1)
	require.Equal(t, pending.ID, page.Abstracts[0].ID)
}

func TestPgSQL_UpdateAbstract(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreAbstract(ctx, newAbstract(newUserID(), "Updatable"))
	require.NoError(t, err)

	entities := &domain.ExtractedEntities{
		Technologies:  []string{"Machine Learning"},
		Domains:       []string{"Agriculture"},
		Methodologies: []string{"Experiment"},
		Confidence:    0.5,
	}
	updated, err := pg.UpdateAbstract(ctx, stored.ID, storage.AbstractUpdates{Entities: entities})
	require.NoError(t, err)
	require.Equal(t, entities, updated.Entities)
	require.Equal(t, domain.AbstractStatusPending, updated.Status)
	require.False(t, updated.UpdatedAt.IsZero())

	reviewer := newUserID()
	reviewedAt := time.Now().UTC().Truncate(time.Millisecond)
	updated, err = pg.UpdateAbstract(ctx, stored.ID, storage.AbstractUpdates{
		Status:       domain.AbstractStatusApproved,
		ExpectStatus: domain.AbstractStatusPending,
		Review: &domain.Review{
			ReviewerID: reviewer,
			ReviewedAt: reviewedAt,
			Feedback:   "Well scoped",
		},
	})
	require.NoError(t, err)
	require.Equal(t, domain.AbstractStatusApproved, updated.Status)
	require.NotNil(t, updated.Review)
	require.Equal(t, reviewer, updated.Review.ReviewerID)
	require.Equal(t, "Well scoped", updated.Review.Feedback)
	require.WithinDuration(t, reviewedAt, updated.Review.ReviewedAt, time.Millisecond)
	require.Equal(t, entities, updated.Entities, "entities are kept when not updated")

	// the status guard no longer matches
	guarded, err := pg.UpdateAbstract(ctx, stored.ID, storage.AbstractUpdates{
		Status:       domain.AbstractStatusRejected,
		ExpectStatus: domain.AbstractStatusPending,
	})
	require.NoError(t, err)
	require.Nil(t, guarded)

	cleared, err := pg.UpdateAbstract(ctx, stored.ID, storage.AbstractUpdates{ClearEntities: true})
	require.NoError(t, err)
	require.Nil(t, cleared.Entities)

	missing, err := pg.UpdateAbstract(ctx, domain.AbstractID(uuid.New()), storage.AbstractUpdates{
		Status: domain.AbstractStatusApproved,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteAbstract(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreAbstract(ctx, newAbstract(newUserID(), "Short lived"))
	require.NoError(t, err)

	deleted, err := pg.DeleteAbstract(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	got, err := pg.AbstractByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	again, err := pg.DeleteAbstract(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	updated, err := pg.UpdateAbstract(ctx, stored.ID, storage.AbstractUpdates{Status: domain.AbstractStatusApproved})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_StatusCountsAndEntities(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := newUserID()
	entities := domain.ExtractedEntities{
		Technologies:  []string{"Blockchain"},
		Domains:       []string{"Finance"},
		Methodologies: []string{"Case Study"},
		Confidence:    0.5,
	}

	for i, status := range []domain.AbstractStatus{
		domain.AbstractStatusPending,
		domain.AbstractStatusPending,
		domain.AbstractStatusApproved,
		domain.AbstractStatusRejected,
	} {
		a := newAbstract(author, fmt.Sprintf("Counted %d", i))
		a.Status = status
		if status == domain.AbstractStatusApproved {
			a.Entities = &entities
		}
		_, err := pg.StoreAbstract(ctx, a)
		require.NoError(t, err)
	}

	counts, err := pg.StatusCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, map[domain.AbstractStatus]int64{
		domain.AbstractStatusPending:  2,
		domain.AbstractStatusApproved: 1,
		domain.AbstractStatusRejected: 1,
	}, counts)

	approved, err := pg.EntitiesByStatus(ctx, domain.AbstractStatusApproved)
	require.NoError(t, err)
	require.Equal(t, []domain.ExtractedEntities{entities}, approved)

	pending, err := pg.EntitiesByStatus(ctx, domain.AbstractStatusPending)
	require.NoError(t, err)
	require.Empty(t, pending)
}
