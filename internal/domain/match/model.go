package match

import (
	"fmt"
	"time"
)

const MaxScore = 1000

// Match is a single game between two teams. MatchDate is a calendar day.
type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
	MatchDate  time.Time
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	HomeTeamID *int64
	AwayTeamID *int64
	HomeScore  *int
	AwayScore  *int
	MatchDate  *time.Time
}

// ListFilter narrows List. Zero values mean "no filter".
type ListFilter struct {
	TeamID   int64
	DateFrom *time.Time
	DateTo   *time.Time
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("home and away team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("home_team_id and away_team_id must be different")
	}
	if m.HomeScore < 0 || m.HomeScore > MaxScore || m.AwayScore < 0 || m.AwayScore > MaxScore {
		return fmt.Errorf("scores must be between 0 and %d", MaxScore)
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}

func (m Match) Apply(p Patch) Match {
	if p.HomeTeamID != nil {
		m.HomeTeamID = *p.HomeTeamID
	}
	if p.AwayTeamID != nil {
		m.AwayTeamID = *p.AwayTeamID
	}
	if p.HomeScore != nil {
		m.HomeScore = *p.HomeScore
	}
	if p.AwayScore != nil {
		m.AwayScore = *p.AwayScore
	}
	if p.MatchDate != nil {
		m.MatchDate = Day(*p.MatchDate)
	}
	return m
}

// Involves reports whether the team played in the match.
func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Matches implements ListFilter semantics for in-memory stores.
func (f ListFilter) Matches(m Match) bool {
	if f.TeamID > 0 && !m.Involves(f.TeamID) {
		return false
	}
	if f.DateFrom != nil && m.MatchDate.Before(Day(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && m.MatchDate.After(Day(*f.DateTo)) {
		return false
	}
	return true
}
