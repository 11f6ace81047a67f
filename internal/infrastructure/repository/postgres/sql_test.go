package postgres

import (
	"database/sql"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

func TestWriteError(t *testing.T) {
	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := writeError(&pq.Error{Code: pqUniqueViolation, Constraint: "teams_name_key"}, "insert team")
		if !errors.Is(err, shared.ErrConflict) {
			t.Fatalf("expected shared.ErrConflict, got %v", err)
		}
	})

	t.Run("foreign key violation becomes conflict", func(t *testing.T) {
		wrapped := crerr.Wrap(&pq.Error{Code: pqForeignKeyViolation}, "exec")
		if err := writeError(wrapped, "delete team"); !errors.Is(err, shared.ErrConflict) {
			t.Fatalf("expected shared.ErrConflict, got %v", err)
		}
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := writeError(cause, "insert match")
		if errors.Is(err, shared.ErrConflict) {
			t.Fatalf("did not expect conflict for %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected cause to be preserved, got %v", err)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := writeError(nil, "noop"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(crerr.Wrap(sql.ErrNoRows, "get team")) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestColumnLists(t *testing.T) {
	if got := joinColumns(teamColumns); got != "id, name, league, created_at, updated_at" {
		t.Fatalf("unexpected team columns: %s", got)
	}
	if got := joinColumns(playerStatsColumns); got != "id, player_id, match_id, points, assists, errors, created_at, updated_at" {
		t.Fatalf("unexpected player stats columns: %s", got)
	}
}
