package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel(teamsTable, teamWrite(item), "RETURNING "+joinColumns(teamColumns))
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "build insert team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, writeError(err, "insert team")
	}
	return teamFromRow(row), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("id", teamID))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *TeamRepository) List(ctx context.Context, page shared.Page) ([]team.Team, error) {
	page = page.Normalize()
	return r.list(ctx, qb.Select(teamColumns...).From(teamsTable).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Offset()))
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	return r.list(ctx, qb.Select(teamColumns...).From(teamsTable).OrderBy("id"))
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.Update(teamsTable).
		SetModel(teamWrite(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(teamColumns)).
		ToSQL()
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "build update team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, writeError(err, "update team")
	}
	return teamFromRow(row), nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	query, args, err := qb.DeleteFrom(teamsTable).Where(qb.Eq("id", teamID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete team query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete team")
	}
	return nil
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrap(err, "get team")
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) list(ctx context.Context, b *qb.SelectBuilder) ([]team.Team, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}
