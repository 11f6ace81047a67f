package postgres

import (
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

const playerStatsTable = "player_stats"

var playerStatsColumns = qb.Columns(playerStatsTableModel{})

type playerStatsTableModel struct {
	ID        int64     `db:"id"`
	PlayerID  int64     `db:"player_id"`
	MatchID   int64     `db:"match_id"`
	Points    int       `db:"points"`
	Assists   int       `db:"assists"`
	Errors    int       `db:"errors"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// playerStatsWriteModel holds the caller-writable columns shared by insert and update.
type playerStatsWriteModel struct {
	PlayerID int64 `db:"player_id"`
	MatchID  int64 `db:"match_id"`
	Points   int   `db:"points"`
	Assists  int   `db:"assists"`
	Errors   int   `db:"errors"`
}

func playerStatsFromRow(row playerStatsTableModel) playerstats.Stats {
	return playerstats.Stats{
		ID:       row.ID,
		PlayerID: row.PlayerID,
		MatchID:  row.MatchID,
		Points:   row.Points,
		Assists:  row.Assists,
		Errors:   row.Errors,
	}
}

func playerStatsWrite(item playerstats.Stats) playerStatsWriteModel {
	return playerStatsWriteModel{
		PlayerID: item.PlayerID,
		MatchID:  item.MatchID,
		Points:   item.Points,
		Assists:  item.Assists,
		Errors:   item.Errors,
	}
}
