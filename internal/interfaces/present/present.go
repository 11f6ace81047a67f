// Package present holds the snake_case JSON views of analytics results shared
// by the MCP tools and the CLI.
package present

import "github.com/riskibarqy/sports-analytics/internal/domain/analytics"

type TeamForm struct {
	TeamID        int64    `json:"team_id"`
	LastN         int      `json:"last_n"`
	Played        int      `json:"played"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Draws         int      `json:"draws"`
	PointsFor     int      `json:"points_for"`
	PointsAgainst int      `json:"points_against"`
	WinPercentage float64  `json:"win_percentage"`
	RecentResults []string `json:"recent_results"`
}

type LeagueTableRow struct {
	Position      int    `json:"position"`
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	PointsDiff    int    `json:"points_diff"`
	Points        int    `json:"points"`
}

type LeagueTable struct {
	Rows            []LeagueTableRow `json:"rows"`
	ExcludedMatches int              `json:"excluded_matches"`
}

type PlayerTrend struct {
	PlayerID        int64   `json:"player_id"`
	MatchesPlayed   int     `json:"matches_played"`
	AvgPoints       float64 `json:"avg_points"`
	AvgAssists      float64 `json:"avg_assists"`
	AvgErrors       float64 `json:"avg_errors"`
	BestMatchID     *int64  `json:"best_match_id"`
	BestMatchPoints *int    `json:"best_match_points"`
	Slope           float64 `json:"slope"`
	Trend           string  `json:"trend"`
}

func FromTeamForm(form analytics.TeamForm) TeamForm {
	results := make([]string, 0, len(form.RecentResults))
	for _, r := range form.RecentResults {
		results = append(results, string(r))
	}
	return TeamForm{
		TeamID:        form.TeamID,
		LastN:         form.LastN,
		Played:        form.Played,
		Wins:          form.Wins,
		Losses:        form.Losses,
		Draws:         form.Draws,
		PointsFor:     form.PointsFor,
		PointsAgainst: form.PointsAgainst,
		WinPercentage: form.WinPercentage,
		RecentResults: results,
	}
}

func FromLeagueTable(table analytics.LeagueTable) LeagueTable {
	rows := make([]LeagueTableRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, LeagueTableRow{
			Position:      row.Position,
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			Played:        row.Played,
			Wins:          row.Wins,
			Losses:        row.Losses,
			Draws:         row.Draws,
			PointsFor:     row.PointsFor,
			PointsAgainst: row.PointsAgainst,
			PointsDiff:    row.PointsDiff,
			Points:        row.Points,
		})
	}
	return LeagueTable{Rows: rows, ExcludedMatches: table.ExcludedMatches}
}

func FromPlayerTrend(trend analytics.PlayerTrend) PlayerTrend {
	return PlayerTrend{
		PlayerID:        trend.PlayerID,
		MatchesPlayed:   trend.MatchesPlayed,
		AvgPoints:       trend.AvgPoints,
		AvgAssists:      trend.AvgAssists,
		AvgErrors:       trend.AvgErrors,
		BestMatchID:     trend.BestMatchID,
		BestMatchPoints: trend.BestMatchPoints,
		Slope:           trend.Slope,
		Trend:           string(trend.Trend),
	}
}
