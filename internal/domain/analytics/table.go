package analytics

import (
	"sort"
	"strings"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

// BuildLeagueTable folds every match into per-team rows and ranks them by
// points, points difference, points for, lower-cased name and finally team id.
// A match naming a team outside teams is skipped and counted, never an error.
func BuildLeagueTable(teams []team.Team, matches []match.Match) LeagueTable {
	rows := make(map[int64]*LeagueTableRow, len(teams))
	ordered := make([]*LeagueTableRow, 0, len(teams))
	for _, t := range teams {
		if _, dup := rows[t.ID]; dup {
			continue
		}
		row := &LeagueTableRow{TeamID: t.ID, TeamName: t.Name}
		rows[t.ID] = row
		ordered = append(ordered, row)
	}

	table := LeagueTable{Scoring: DefaultScoring()}
	for _, m := range matches {
		home, okHome := rows[m.HomeTeamID]
		away, okAway := rows[m.AwayTeamID]
		if !okHome || !okAway {
			table.ExcludedMatches++
			continue
		}

		home.Played++
		away.Played++
		home.PointsFor += m.HomeScore
		home.PointsAgainst += m.AwayScore
		away.PointsFor += m.AwayScore
		away.PointsAgainst += m.HomeScore

		switch {
		case m.HomeScore > m.AwayScore:
			home.Wins++
			away.Losses++
			home.Points += table.Scoring.Win
			away.Points += table.Scoring.Loss
		case m.HomeScore < m.AwayScore:
			away.Wins++
			home.Losses++
			away.Points += table.Scoring.Win
			home.Points += table.Scoring.Loss
		default:
			home.Draws++
			away.Draws++
			home.Points += table.Scoring.Draw
			away.Points += table.Scoring.Draw
		}
	}

	table.Rows = make([]LeagueTableRow, 0, len(ordered))
	for _, row := range ordered {
		row.PointsDiff = row.PointsFor - row.PointsAgainst
		table.Rows = append(table.Rows, *row)
	}

	sort.Slice(table.Rows, func(i, j int) bool {
		return ranksAbove(table.Rows[i], table.Rows[j])
	})
	for i := range table.Rows {
		table.Rows[i].Position = i + 1
	}

	return table
}

func ranksAbove(a, b LeagueTableRow) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.PointsDiff != b.PointsDiff {
		return a.PointsDiff > b.PointsDiff
	}
	if a.PointsFor != b.PointsFor {
		return a.PointsFor > b.PointsFor
	}
	an, bn := strings.ToLower(a.TeamName), strings.ToLower(b.TeamName)
	if an != bn {
		return an < bn
	}
	return a.TeamID < b.TeamID
}
