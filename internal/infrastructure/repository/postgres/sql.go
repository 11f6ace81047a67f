package postgres

import (
	"context"
	"database/sql"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// writeError wraps a write failure. Unique, foreign key and check violations
// are reported as shared.ErrConflict with the driver error kept as detail.
func writeError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if crerr.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqForeignKeyViolation, pqCheckViolation:
			return crerr.WithSecondaryError(crerr.Wrapf(shared.ErrConflict, "%s: %s", op, pqErr.Constraint), err)
		}
	}
	return crerr.Wrap(err, op)
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// exists reports whether any row of table satisfies every condition.
func exists(ctx context.Context, db sqlx.QueryerContext, table string, conditions ...qb.Condition) (bool, error) {
	inner, args, err := qb.Select("1").From(table).Where(conditions...).Limit(1).ToSQL()
	if err != nil {
		return false, crerr.Wrapf(err, "build exists query on %s", table)
	}

	var found bool
	if err := sqlx.GetContext(ctx, db, &found, "SELECT EXISTS ("+inner+")", args...); err != nil {
		return false, crerr.Wrapf(err, "exists on %s", table)
	}
	return found, nil
}
