package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel(playersTable, playerWrite(item), "RETURNING "+joinColumns(playerColumns))
	if err != nil {
		return player.Player{}, crerr.Wrap(err, "build insert player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, writeError(err, "insert player")
	}
	return playerFromRow(row), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From(playersTable).Where(qb.Eq("id", playerID)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter, page shared.Page) ([]player.Player, error) {
	page = page.Normalize()
	b := qb.Select(playerColumns...).From(playersTable).OrderBy("id").Limit(page.Limit).Offset(page.Offset())
	if filter.TeamID > 0 {
		b = b.Where(qb.Eq("team_id", filter.TeamID))
	}
	return r.list(ctx, b)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	return r.list(ctx, qb.Select(playerColumns...).From(playersTable).Where(qb.Eq("team_id", teamID)).OrderBy("id"))
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.Update(playersTable).
		SetModel(playerWrite(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(playerColumns)).
		ToSQL()
	if err != nil {
		return player.Player{}, crerr.Wrap(err, "build update player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, writeError(err, "update player")
	}
	return playerFromRow(row), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	query, args, err := qb.DeleteFrom(playersTable).Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete player query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete player")
	}
	return nil
}

func (r *PlayerRepository) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	return exists(ctx, r.db, playersTable, qb.Eq("team_id", teamID))
}

func (r *PlayerRepository) list(ctx context.Context, b *qb.SelectBuilder) ([]player.Player, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}
