package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel(matchesTable, matchWrite(item), "RETURNING "+joinColumns(matchColumns))
	if err != nil {
		return match.Match{}, crerr.Wrap(err, "build insert match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, writeError(err, "insert match")
	}
	return matchFromRow(row), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).Where(qb.Eq("id", matchID)).Limit(1).ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrap(err, "get match")
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) GetByIDs(ctx context.Context, matchIDs []int64) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return []match.Match{}, nil
	}
	return r.list(ctx, qb.Select(matchColumns...).From(matchesTable).
		Where(qb.InInt64("id", matchIDs)).
		OrderBy("id"))
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter, page shared.Page) ([]match.Match, error) {
	page = page.Normalize()
	b := qb.Select(matchColumns...).From(matchesTable).
		OrderBy("match_date DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset())
	if filter.TeamID > 0 {
		b = b.Where(involvesTeam(filter.TeamID))
	}
	if filter.DateFrom != nil {
		b = b.Where(qb.Gte("match_date", match.Day(*filter.DateFrom)))
	}
	if filter.DateTo != nil {
		b = b.Where(qb.Lte("match_date", match.Day(*filter.DateTo)))
	}
	return r.list(ctx, b)
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	return r.list(ctx, qb.Select(matchColumns...).From(matchesTable).
		Where(involvesTeam(teamID)).
		OrderBy("match_date DESC", "id DESC"))
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, qb.Select(matchColumns...).From(matchesTable).OrderBy("id"))
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.Update(matchesTable).
		SetModel(matchWrite(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(matchColumns)).
		ToSQL()
	if err != nil {
		return match.Match{}, crerr.Wrap(err, "build update match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, writeError(err, "update match")
	}
	return matchFromRow(row), nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom(matchesTable).Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete match query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete match")
	}
	return nil
}

func (r *MatchRepository) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	return exists(ctx, r.db, matchesTable, involvesTeam(teamID))
}

func involvesTeam(teamID int64) qb.Condition {
	return qb.Or(qb.Eq("home_team_id", teamID), qb.Eq("away_team_id", teamID))
}

func (r *MatchRepository) list(ctx context.Context, b *qb.SelectBuilder) ([]match.Match, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}
