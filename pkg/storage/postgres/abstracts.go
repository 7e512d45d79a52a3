package postgres

import (
	"context"
	"portal/pkg/domain"
	"portal/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	abstractsTable = "abstracts"
)

// notDeleted filters out soft-deleted abstracts.
func notDeleted() exp.Expression {
	return goqu.I("deleted_at").IsNull()
}

func (p *PgSQL) StoreAbstract(ctx context.Context, abstract domain.Abstract) (*domain.Abstract, error) {
	var row PgAbstract
	if err := row.FromDomain(abstract); err != nil {
		return nil, err
	}
	if row.Status == "" {
		row.Status = string(domain.AbstractStatusPending)
	}

	var stored PgAbstract
	if _, err := p.Builder.Insert(abstractsTable).
		Rows(row).
		Returning(&PgAbstract{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translate(err, "could not store abstract into pg")
	}

	return stored.ToDomain()
}

// AbstractByID returns an abstract by its ID, excluding soft-deleted rows.
func (p *PgSQL) AbstractByID(ctx context.Context, id domain.AbstractID) (*domain.Abstract, error) {
	var row PgAbstract
	found, err := p.Builder.From(abstractsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translate(err, "could not fetch abstract by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Abstracts returns a page of abstracts ordered by created_at DESC, id DESC.
// One extra row is fetched to decide whether a next page exists.
func (p *PgSQL) Abstracts(ctx context.Context, filter storage.AbstractFilter) (storage.AbstractPage, error) {
	w := []exp.Expression{notDeleted()}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.AuthorID != nil {
		w = append(w, goqu.I("author_id").Eq(uuid.UUID(*filter.AuthorID)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	var rows []PgAbstract
	if err := p.Builder.From(abstractsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.AbstractPage{}, translate(err, "could not fetch abstracts from pg")
	}

	var nextCursor *time.Time
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		if len(rows) > 0 {
			next := rows[len(rows)-1].CreatedAt
			nextCursor = &next
		}
	}

	abstracts, err := pgAbstractsToDomain(rows)
	if err != nil {
		return storage.AbstractPage{}, err
	}

	return storage.AbstractPage{
		Abstracts:  abstracts,
		NextCursor: nextCursor,
	}, nil
}

// UpdateAbstract applies the provided fields to a single abstract and
// returns the updated row.
func (p *PgSQL) UpdateAbstract(ctx context.Context,
	id domain.AbstractID,
	updates storage.AbstractUpdates) (*domain.Abstract, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	switch {
	case updates.ClearEntities:
		rec["entities"] = goqu.L("NULL")
	case updates.Entities != nil:
		entities, err := marshalEntities(updates.Entities)
		if err != nil {
			return nil, err
		}
		rec["entities"] = entities
	}
	if updates.Review != nil {
		rec["reviewer_id"] = uuid.UUID(updates.Review.ReviewerID)
		rec["reviewed_at"] = updates.Review.ReviewedAt
		if updates.Review.Feedback == "" {
			rec["feedback"] = goqu.L("NULL")
		} else {
			rec["feedback"] = updates.Review.Feedback
		}
	}

	w := []exp.Expression{goqu.I("id").Eq(uuid.UUID(id)), notDeleted()}
	if updates.ExpectStatus != "" {
		w = append(w, goqu.I("status").Eq(string(updates.ExpectStatus)))
	}

	var row PgAbstract
	found, err := p.Builder.Update(abstractsTable).
		Set(rec).
		Where(w...).
		Returning(&PgAbstract{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translate(err, "could not update abstract in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteAbstract performs a soft delete by setting the deleted_at timestamp.
func (p *PgSQL) DeleteAbstract(ctx context.Context, id domain.AbstractID) (*domain.Abstract, error) {
	var row PgAbstract
	found, err := p.Builder.Update(abstractsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted()).
		Returning(&PgAbstract{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translate(err, "could not delete abstract in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StatusCounts(ctx context.Context) (map[domain.AbstractStatus]int64, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(abstractsTable).
		Select(goqu.C("status"), goqu.COUNT(goqu.Star()).As("count")).
		Where(notDeleted()).
		GroupBy(goqu.C("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translate(err, "could not count abstracts by status")
	}

	out := make(map[domain.AbstractStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.AbstractStatus(r.Status)] = r.Count
	}

	return out, nil
}

func (p *PgSQL) EntitiesByStatus(ctx context.Context, status domain.AbstractStatus) ([]domain.ExtractedEntities, error) {
	var rows []struct {
		Entities NullJSON `db:"entities"`
	}
	if err := p.Builder.From(abstractsTable).
		Select(goqu.C("entities")).
		Where(
			goqu.I("status").Eq(string(status)),
			goqu.I("entities").IsNotNull(),
			notDeleted(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translate(err, "could not fetch entities by status")
	}

	out := make([]domain.ExtractedEntities, 0, len(rows))
	for _, r := range rows {
		e, err := unmarshalEntities(r.Entities)
		if err != nil {
			return nil, err
		}
		if e != nil {
			out = append(out, *e)
		}
	}

	return out, nil
}
