package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

const teamsTable = "teams"

var teamColumns = qb.Columns(teamTableModel{})

type teamTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	League    sql.NullString `db:"league"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// teamWriteModel holds the caller-writable columns shared by insert and update.
type teamWriteModel struct {
	Name   string         `db:"name"`
	League sql.NullString `db:"league"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:     row.ID,
		Name:   row.Name,
		League: row.League.String,
	}
}

func teamWrite(item team.Team) teamWriteModel {
	return teamWriteModel{
		Name:   item.Name,
		League: nullString(item.League),
	}
}
