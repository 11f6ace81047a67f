package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

const playersTable = "players"

var playerColumns = qb.Columns(playerTableModel{})

type playerTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Position  sql.NullString `db:"position"`
	TeamID    int64          `db:"team_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// playerWriteModel holds the caller-writable columns shared by insert and update.
type playerWriteModel struct {
	Name     string         `db:"name"`
	Position sql.NullString `db:"position"`
	TeamID   int64          `db:"team_id"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		Name:     row.Name,
		Position: row.Position.String,
		TeamID:   row.TeamID,
	}
}

func playerWrite(item player.Player) playerWriteModel {
	return playerWriteModel{
		Name:     item.Name,
		Position: nullString(item.Position),
		TeamID:   item.TeamID,
	}
}
