package httpapi

import (
	"github.com/riskibarqy/sports-analytics/internal/domain/analytics"
	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

type teamDTO struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	League *string `json:"league"`
}

type matchDTO struct {
	ID         int64  `json:"id"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	MatchDate  string `json:"match_date"`
}

type playerDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position"`
	TeamID   int64   `json:"team_id"`
}

type playerStatsDTO struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"player_id"`
	MatchID  int64 `json:"match_id"`
	Points   int   `json:"points"`
	Assists  int   `json:"assists"`
	Errors   int   `json:"errors"`
}

type teamFormDTO struct {
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

type leagueTableRowDTO struct {
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

type scoringDTO struct {
	Win  int `json:"win"`
	Draw int `json:"draw"`
	Loss int `json:"loss"`
}

type leagueTableMeta struct {
	Count           int        `json:"count"`
	Scoring         scoringDTO `json:"scoring"`
	ExcludedMatches int        `json:"excluded_matches"`
}

type playerTrendDTO struct {
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

type teamPlayerTrendDTO struct {
	PlayerName string         `json:"player_name"`
	Position   *string        `json:"position"`
	Trend      playerTrendDTO `json:"trend"`
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, League: optionalString(t.League)}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		MatchDate:  m.MatchDate.Format(dateLayout),
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, Name: p.Name, Position: optionalString(p.Position), TeamID: p.TeamID}
}

func playerStatsToDTO(s playerstats.Stats) playerStatsDTO {
	return playerStatsDTO{
		ID:       s.ID,
		PlayerID: s.PlayerID,
		MatchID:  s.MatchID,
		Points:   s.Points,
		Assists:  s.Assists,
		Errors:   s.Errors,
	}
}

func teamFormToDTO(f analytics.TeamForm) teamFormDTO {
	results := make([]string, 0, len(f.RecentResults))
	for _, r := range f.RecentResults {
		results = append(results, string(r))
	}
	return teamFormDTO{
		TeamID:        f.TeamID,
		LastN:         f.LastN,
		Played:        f.Played,
		Wins:          f.Wins,
		Losses:        f.Losses,
		Draws:         f.Draws,
		PointsFor:     f.PointsFor,
		PointsAgainst: f.PointsAgainst,
		WinPercentage: f.WinPercentage,
		RecentResults: results,
	}
}

func leagueTableToDTO(table analytics.LeagueTable) ([]leagueTableRowDTO, leagueTableMeta) {
	rows := make([]leagueTableRowDTO, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, leagueTableRowDTO{
			Position:      r.Position,
			TeamID:        r.TeamID,
			TeamName:      r.TeamName,
			Played:        r.Played,
			Wins:          r.Wins,
			Losses:        r.Losses,
			Draws:         r.Draws,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			PointsDiff:    r.PointsDiff,
			Points:        r.Points,
		})
	}
	return rows, leagueTableMeta{
		Count: len(rows),
		Scoring: scoringDTO{
			Win:  table.Scoring.Win,
			Draw: table.Scoring.Draw,
			Loss: table.Scoring.Loss,
		},
		ExcludedMatches: table.ExcludedMatches,
	}
}

func playerTrendToDTO(t analytics.PlayerTrend) playerTrendDTO {
	return playerTrendDTO{
		PlayerID:        t.PlayerID,
		MatchesPlayed:   t.MatchesPlayed,
		AvgPoints:       t.AvgPoints,
		AvgAssists:      t.AvgAssists,
		AvgErrors:       t.AvgErrors,
		BestMatchID:     t.BestMatchID,
		BestMatchPoints: t.BestMatchPoints,
		Slope:           t.Slope,
		Trend:           string(t.Trend),
	}
}

func teamPlayerTrendToDTO(item usecase.PlayerTrendItem) teamPlayerTrendDTO {
	return teamPlayerTrendDTO{
		PlayerName: item.Player.Name,
		Position:   optionalString(item.Player.Position),
		Trend:      playerTrendToDTO(item.Trend),
	}
}
