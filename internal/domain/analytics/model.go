// Package analytics derives team form, league standings and player trends
// from an already-fetched snapshot. Every function here is pure: no I/O,
// no shared state, and inputs are never mutated.
package analytics

// Result is a single match outcome from one team's perspective.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultDraw Result = "D"
)

// Trend classifies the direction of a player's points over time.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// League points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

type TeamForm struct {
	TeamID        int64
	LastN         int
	Played        int
	Wins          int
	Losses        int
	Draws         int
	PointsFor     int
	PointsAgainst int
	WinPercentage float64
	// RecentResults is most recent first.
	RecentResults []Result
}

type LeagueTableRow struct {
	Position      int
	TeamID        int64
	TeamName      string
	Played        int
	Wins          int
	Losses        int
	Draws         int
	PointsFor     int
	PointsAgainst int
	PointsDiff    int
	Points        int
}

// Scoring documents the league points scheme used to build a table.
type Scoring struct {
	Win  int
	Draw int
	Loss int
}

func DefaultScoring() Scoring {
	return Scoring{Win: PointsWin, Draw: PointsDraw, Loss: PointsLoss}
}

type LeagueTable struct {
	Rows    []LeagueTableRow
	Scoring Scoring
	// ExcludedMatches counts matches skipped because a side is not a known team.
	ExcludedMatches int
}

type PlayerTrend struct {
	PlayerID        int64
	MatchesPlayed   int
	AvgPoints       float64
	AvgAssists      float64
	AvgErrors       float64
	BestMatchID     *int64
	BestMatchPoints *int
	Slope           float64
	Trend           Trend
}
