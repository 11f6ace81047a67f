package postgres

import (
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	qb "github.com/riskibarqy/sports-analytics/internal/platform/querybuilder"
)

const matchesTable = "matches"

var matchColumns = qb.Columns(matchTableModel{})

type matchTableModel struct {
	ID         int64     `db:"id"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	MatchDate  time.Time `db:"match_date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// matchWriteModel holds the caller-writable columns shared by insert and update.
type matchWriteModel struct {
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	MatchDate  time.Time `db:"match_date"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		MatchDate:  match.Day(row.MatchDate),
	}
}

func matchWrite(item match.Match) matchWriteModel {
	return matchWriteModel{
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		MatchDate:  match.Day(item.MatchDate),
	}
}
