package postgres

import (
	"errors"
	"portal/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintMessages maps unique indexes to the message reported to callers.
var constraintMessages = map[string]string{ //nolint: gochecknoglobals
	"abstracts_title_idx": "an abstract with this title already exists",
	"profiles_email_idx":  "a profile with this email already exists",
	"profiles_pkey":       "profile already exists",
}

// translate maps PostgreSQL errors that callers can act on to semantic
// errors and wraps everything else with msg.
func translate(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			text, ok := constraintMessages[pgErr.ConstraintName]
			if !ok {
				text = "duplicate record"
			}

			return serrors.Wrap(serrors.ErrConflict, err, "%s", text)
		case pgerrcode.InvalidTextRepresentation, pgerrcode.CheckViolation:
			return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
		case pgerrcode.QueryCanceled:
			return serrors.Wrap(serrors.ErrTimeout, err, "%s", msg)
		}
	}

	return serrors.Wrap(serrors.ErrInternal, err, "%s", msg)
}
