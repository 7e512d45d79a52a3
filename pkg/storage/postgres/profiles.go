package postgres

import (
	"context"
	"portal/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable = "profiles"
)

// UpsertProfile inserts the profile or, when the ID exists, refreshes its
// email, name and role.
func (p *PgSQL) UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var row PgProfile
	row.FromDomain(profile)

	var stored PgProfile
	if _, err := p.Builder.Insert(profilesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"email":      goqu.L("EXCLUDED.email"),
			"full_name":  goqu.L("EXCLUDED.full_name"),
			"role":       goqu.L("EXCLUDED.role"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translate(err, "could not upsert profile")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ProfileByID(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translate(err, "could not fetch profile by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
