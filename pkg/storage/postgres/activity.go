package postgres

import (
	"context"
	"portal/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	activityTable = "activity_logs"
)

func (p *PgSQL) LogActivity(ctx context.Context, logs ...domain.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}

	rows := make([]PgActivityLog, len(logs))
	for i := range logs {
		rows[i].FromDomain(logs[i])
	}

	if _, err := p.Builder.Insert(activityTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return translate(err, "could not store activity logs")
	}

	return nil
}

// AbstractActivity returns the newest activity of an abstract first.
func (p *PgSQL) AbstractActivity(ctx context.Context, id domain.AbstractID, limit uint) ([]domain.ActivityLog, error) {
	var rows []PgActivityLog
	if err := p.Builder.From(activityTable).
		Where(goqu.I("abstract_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translate(err, "could not fetch abstract activity")
	}

	out := make([]domain.ActivityLog, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
