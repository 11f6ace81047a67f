package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-analytics/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads snapshot into an empty database. It is a no-op when
// any team already exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, snapshot memory.Snapshot) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(kind string, id int64, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s %d query: %w", kind, id, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed %s %d: %w", kind, id, err)
		}
		return nil
	}

	for _, t := range snapshot.Teams {
		if err := exec("team", t.ID, `
INSERT INTO teams (id, name, league)
VALUES (:id, :name, :league)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":     t.ID,
			"name":   t.Name,
			"league": nullString(t.League),
		}); err != nil {
			return err
		}
	}

	for _, p := range snapshot.Players {
		if err := exec("player", p.ID, `
INSERT INTO players (id, name, position, team_id)
VALUES (:id, :name, :position, :team_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"position": nullString(p.Position),
			"team_id":  p.TeamID,
		}); err != nil {
			return err
		}
	}

	for _, m := range snapshot.Matches {
		if err := exec("match", m.ID, `
INSERT INTO matches (id, home_team_id, away_team_id, home_score, away_score, match_date)
VALUES (:id, :home_team_id, :away_team_id, :home_score, :away_score, :match_date)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           m.ID,
			"home_team_id": m.HomeTeamID,
			"away_team_id": m.AwayTeamID,
			"home_score":   m.HomeScore,
			"away_score":   m.AwayScore,
			"match_date":   m.MatchDate.UTC(),
		}); err != nil {
			return err
		}
	}

	for _, st := range snapshot.Stats {
		if err := exec("player stats", st.ID, `
INSERT INTO player_stats (id, player_id, match_id, points, assists, errors)
VALUES (:id, :player_id, :match_id, :points, :assists, :errors)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        st.ID,
			"player_id": st.PlayerID,
			"match_id":  st.MatchID,
			"points":    st.Points,
			"assists":   st.Assists,
			"errors":    st.Errors,
		}); err != nil {
			return err
		}
	}

	// explicit ids leave the identity sequences behind
	for _, table := range []string{teamsTable, playersTable, matchesTable, playerStatsTable} {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
