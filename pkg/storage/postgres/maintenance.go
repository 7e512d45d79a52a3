package postgres

import (
	"context"
	"portal/pkg/domain"
	"portal/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) EntityStats(ctx context.Context) ([]storage.EntityStats, error) {
	var rows []struct {
		Status       string `db:"status"`
		Total        int64  `db:"total"`
		WithEntities int64  `db:"with_entities"`
	}
	if err := p.Builder.From(abstractsTable).
		Select(
			goqu.C("status"),
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.COUNT(goqu.C("entities")).As("with_entities"),
		).
		Where(notDeleted()).
		GroupBy(goqu.C("status")).
		Order(goqu.C("status").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translate(err, "could not compute entity stats")
	}

	out := make([]storage.EntityStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.EntityStats{
			Status:       domain.AbstractStatus(r.Status),
			Total:        r.Total,
			WithEntities: r.WithEntities,
		})
	}

	return out, nil
}

func (p *PgSQL) ClearEntities(ctx context.Context, ids ...domain.AbstractID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	uuids := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		uuids[i] = uuid.UUID(id)
	}

	return p.clearEntities(ctx, goqu.I("id").In(uuids))
}

func (p *PgSQL) ClearEntitiesByStatus(ctx context.Context, status domain.AbstractStatus) (int64, error) {
	return p.clearEntities(ctx, goqu.I("status").Eq(string(status)))
}

func (p *PgSQL) ClearAllEntities(ctx context.Context) (int64, error) {
	return p.clearEntities(ctx)
}

// clearEntities sets entities to NULL on every live abstract matching where.
func (p *PgSQL) clearEntities(ctx context.Context, where ...exp.Expression) (int64, error) {
	where = append(where, goqu.I("entities").IsNotNull(), notDeleted())
	res, err := p.Builder.Update(abstractsTable).
		Set(goqu.Record{
			"entities":   goqu.L("NULL"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(where...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, translate(err, "could not clear entities")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, translate(err, "could not count cleared entities")
	}

	return n, nil
}

func (p *PgSQL) RemainingEntities(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(abstractsTable).
		Where(goqu.I("entities").IsNotNull(), notDeleted()).
		CountContext(ctx)
	if err != nil {
		return 0, translate(err, "could not count remaining entities")
	}

	return n, nil
}
