package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) Create(ctx context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	query, args, err := qb.InsertModel(playerStatsTable, playerStatsWrite(item), "RETURNING "+joinColumns(playerStatsColumns))
	if err != nil {
		return playerstats.Stats{}, crerr.Wrap(err, "build insert player stats query")
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return playerstats.Stats{}, writeError(err, "insert player stats")
	}
	return playerStatsFromRow(row), nil
}

func (r *PlayerStatsRepository) GetByID(ctx context.Context, statsID int64) (playerstats.Stats, bool, error) {
	return r.getOne(ctx, qb.Eq("id", statsID))
}

func (r *PlayerStatsRepository) GetByPlayerAndMatch(ctx context.Context, playerID, matchID int64) (playerstats.Stats, bool, error) {
	return r.getOne(ctx, qb.Eq("player_id", playerID), qb.Eq("match_id", matchID))
}

func (r *PlayerStatsRepository) List(ctx context.Context, filter playerstats.ListFilter) ([]playerstats.Stats, error) {
	b := qb.Select(playerStatsColumns...).From(playerStatsTable).OrderBy("id")
	if filter.PlayerID > 0 {
		b = b.Where(qb.Eq("player_id", filter.PlayerID))
	}
	if filter.MatchID > 0 {
		b = b.Where(qb.Eq("match_id", filter.MatchID))
	}
	return r.list(ctx, b)
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]playerstats.Stats, error) {
	return r.List(ctx, playerstats.ListFilter{PlayerID: playerID})
}

func (r *PlayerStatsRepository) Update(ctx context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	query, args, err := qb.Update(playerStatsTable).
		SetModel(playerStatsWrite(item)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(playerStatsColumns)).
		ToSQL()
	if err != nil {
		return playerstats.Stats{}, crerr.Wrap(err, "build update player stats query")
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return playerstats.Stats{}, writeError(err, "update player stats")
	}
	return playerStatsFromRow(row), nil
}

func (r *PlayerStatsRepository) Delete(ctx context.Context, statsID int64) error {
	query, args, err := qb.DeleteFrom(playerStatsTable).Where(qb.Eq("id", statsID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete player stats query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete player stats")
	}
	return nil
}

func (r *PlayerStatsRepository) ExistsForPlayer(ctx context.Context, playerID int64) (bool, error) {
	return exists(ctx, r.db, playerStatsTable, qb.Eq("player_id", playerID))
}

func (r *PlayerStatsRepository) ExistsForMatch(ctx context.Context, matchID int64) (bool, error) {
	return exists(ctx, r.db, playerStatsTable, qb.Eq("match_id", matchID))
}

func (r *PlayerStatsRepository) getOne(ctx context.Context, conditions ...qb.Condition) (playerstats.Stats, bool, error) {
	query, args, err := qb.Select(playerStatsColumns...).From(playerStatsTable).Where(conditions...).Limit(1).ToSQL()
	if err != nil {
		return playerstats.Stats{}, false, crerr.Wrap(err, "build get player stats query")
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.Stats{}, false, nil
		}
		return playerstats.Stats{}, false, crerr.Wrap(err, "get player stats")
	}
	return playerStatsFromRow(row), true, nil
}

func (r *PlayerStatsRepository) list(ctx context.Context, b *qb.SelectBuilder) ([]playerstats.Stats, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list player stats query")
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select player stats")
	}

	out := make([]playerstats.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerStatsFromRow(row))
	}
	return out, nil
}
