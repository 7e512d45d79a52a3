package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"portal/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgAbstract struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	AuthorID uuid.UUID `db:"author_id"`

	Title      string          `db:"title"`
	Authors    json.RawMessage `db:"authors"`
	Department string          `db:"department"`
	Body       string          `db:"body"`
	Keywords   json.RawMessage `db:"keywords"`
	Status     string          `db:"status"`
	Entities   NullJSON        `db:"entities"`

	ReviewerID uuid.NullUUID  `db:"reviewer_id" goqu:"skipinsert"`
	ReviewedAt sql.NullTime   `db:"reviewed_at" goqu:"skipinsert"`
	Feedback   sql.NullString `db:"feedback"    goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgAbstract) ToDomain() (*domain.Abstract, error) {
	out := &domain.Abstract{
		ID:         domain.AbstractID(p.ID),
		AuthorID:   domain.UserID(p.AuthorID),
		Title:      p.Title,
		Department: p.Department,
		Body:       p.Body,
		Status:     domain.AbstractStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}
	if err := unmarshalList(p.Authors, &out.Authors); err != nil {
		return nil, fmt.Errorf("could not unmarshal abstract authors: %w", err)
	}
	if err := unmarshalList(p.Keywords, &out.Keywords); err != nil {
		return nil, fmt.Errorf("could not unmarshal abstract keywords: %w", err)
	}
	entities, err := unmarshalEntities(p.Entities)
	if err != nil {
		return nil, err
	}
	out.Entities = entities
	if p.ReviewerID.Valid {
		out.Review = &domain.Review{
			ReviewerID: domain.UserID(p.ReviewerID.UUID),
			ReviewedAt: p.ReviewedAt.Time,
			Feedback:   p.Feedback.String,
		}
	}

	return out, nil
}

func (p *PgAbstract) FromDomain(a domain.Abstract) error {
	authors, err := marshalList(a.Authors)
	if err != nil {
		return fmt.Errorf("could not marshal abstract authors: %w", err)
	}
	keywords, err := marshalList(a.Keywords)
	if err != nil {
		return fmt.Errorf("could not marshal abstract keywords: %w", err)
	}
	entities, err := marshalEntities(a.Entities)
	if err != nil {
		return err
	}

	*p = PgAbstract{
		ID:         uuid.UUID(a.ID),
		AuthorID:   uuid.UUID(a.AuthorID),
		Title:      a.Title,
		Authors:    authors,
		Department: a.Department,
		Body:       a.Body,
		Keywords:   keywords,
		Status:     string(a.Status),
		Entities:   entities,
		CreatedAt:  a.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  a.UpdatedAt,
			Valid: !a.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  a.DeletedAt,
			Valid: !a.DeletedAt.IsZero(),
		},
	}
	if a.Review != nil {
		p.ReviewerID = uuid.NullUUID{UUID: uuid.UUID(a.Review.ReviewerID), Valid: true}
		p.ReviewedAt = sql.NullTime{Time: a.Review.ReviewedAt, Valid: !a.Review.ReviewedAt.IsZero()}
		p.Feedback = sql.NullString{String: a.Review.Feedback, Valid: a.Review.Feedback != ""}
	}

	return nil
}

func marshalList(list []string) (json.RawMessage, error) {
	if list == nil {
		list = []string{}
	}

	return json.Marshal(list)
}

func unmarshalList(raw json.RawMessage, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, dst)
}

// NullJSON is a nullable JSONB column.
type NullJSON struct {
	Raw   json.RawMessage
	Valid bool
}

// Value implements driver.Valuer; an invalid value is written as NULL.
func (n NullJSON) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return string(n.Raw), nil
}

// Scan implements sql.Scanner.
func (n *NullJSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = NullJSON{}
	case []byte:
		*n = NullJSON{Raw: append(json.RawMessage(nil), v...), Valid: true}
	case string:
		*n = NullJSON{Raw: json.RawMessage(v), Valid: true}
	default:
		return fmt.Errorf("cannot scan %T into NullJSON", src)
	}

	return nil
}

// marshalEntities keeps the column NULL for a nil result.
func marshalEntities(e *domain.ExtractedEntities) (NullJSON, error) {
	if e == nil {
		return NullJSON{}, nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return NullJSON{}, fmt.Errorf("could not marshal extracted entities: %w", err)
	}

	return NullJSON{Raw: b, Valid: true}, nil
}

func unmarshalEntities(n NullJSON) (*domain.ExtractedEntities, error) {
	if !n.Valid || len(n.Raw) == 0 || string(n.Raw) == "null" {
		return nil, nil
	}
	var e domain.ExtractedEntities
	if err := json.Unmarshal(n.Raw, &e); err != nil {
		return nil, fmt.Errorf("could not unmarshal extracted entities: %w", err)
	}

	return &e, nil
}

func pgAbstractsToDomain(rows []PgAbstract) ([]domain.Abstract, error) {
	out := make([]domain.Abstract, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgProfile struct {
	ID       uuid.UUID `db:"id"`
	Email    string    `db:"email"`
	FullName string    `db:"full_name"`
	Role     string    `db:"role"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      domain.Role(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgProfile) FromDomain(profile domain.Profile) {
	*p = PgProfile{
		ID:        uuid.UUID(profile.ID),
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  profile.UpdatedAt,
			Valid: !profile.UpdatedAt.IsZero(),
		},
	}
}

type PgActivityLog struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	AbstractID uuid.NullUUID `db:"abstract_id"`
	Action     string        `db:"action"`
	Details    string        `db:"details"`
	CreatedAt  time.Time     `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgActivityLog) ToDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:         p.ID,
		UserID:     domain.UserID(p.UserID),
		AbstractID: domain.AbstractID(p.AbstractID.UUID),
		Action:     domain.ActivityAction(p.Action),
		Details:    p.Details,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgActivityLog) FromDomain(log domain.ActivityLog) {
	abstractID := uuid.UUID(log.AbstractID)
	*p = PgActivityLog{
		ID:         log.ID,
		UserID:     uuid.UUID(log.UserID),
		AbstractID: uuid.NullUUID{UUID: abstractID, Valid: abstractID != uuid.Nil},
		Action:     string(log.Action),
		Details:    log.Details,
		CreatedAt:  log.CreatedAt,
	}
}
