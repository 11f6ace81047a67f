package playerstats

import "fmt"

const MaxValue = 1000

// Stats is one player's line for one match.
type Stats struct {
	ID       int64
	PlayerID int64
	MatchID  int64
	Points   int
	Assists  int
	Errors   int
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Points  *int
	Assists *int
	Errors  *int
}

// ListFilter narrows List. Zero ids mean "no filter".
type ListFilter struct {
	MatchID  int64
	PlayerID int64
}

func (s Stats) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if s.MatchID <= 0 {
		return fmt.Errorf("match id is required")
	}
	for name, v := range map[string]int{"points": s.Points, "assists": s.Assists, "errors": s.Errors} {
		if v < 0 || v > MaxValue {
			return fmt.Errorf("%s must be between 0 and %d", name, MaxValue)
		}
	}

	return nil
}

func (s Stats) Apply(p Patch) Stats {
	if p.Points != nil {
		s.Points = *p.Points
	}
	if p.Assists != nil {
		s.Assists = *p.Assists
	}
	if p.Errors != nil {
		s.Errors = *p.Errors
	}
	return s
}

func (f ListFilter) Matches(s Stats) bool {
	if f.MatchID > 0 && s.MatchID != f.MatchID {
		return false
	}
	if f.PlayerID > 0 && s.PlayerID != f.PlayerID {
		return false
	}
	return true
}
