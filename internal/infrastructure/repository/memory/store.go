package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

// Snapshot is a full copy of the dataset, used for seeding and reloads.
type Snapshot struct {
	Teams   []team.Team
	Matches []match.Match
	Players []player.Player
	Stats   []playerstats.Stats
}

// Store keeps every entity in process memory and enforces the same unique
// and restrict rules as the postgres schema.
type Store struct {
	mu      sync.RWMutex
	teams   map[int64]team.Team
	matches map[int64]match.Match
	players map[int64]player.Player
	stats   map[int64]playerstats.Stats

	nextTeamID   int64
	nextMatchID  int64
	nextPlayerID int64
	nextStatsID  int64
}

func NewStore(snapshot Snapshot) (*Store, error) {
	s := &Store{}
	if err := s.Replace(snapshot); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace swaps the whole dataset atomically. The current data is kept when
// the snapshot is inconsistent.
func (s *Store) Replace(snapshot Snapshot) error {
	next, err := buildState(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = next.teams
	s.matches = next.matches
	s.players = next.players
	s.stats = next.stats
	s.nextTeamID = next.nextTeamID
	s.nextMatchID = next.nextMatchID
	s.nextPlayerID = next.nextPlayerID
	s.nextStatsID = next.nextStatsID
	return nil
}

// Snapshot returns a copy of the current dataset ordered by id.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Teams:   sortedValues(s.teams, func(t team.Team) int64 { return t.ID }),
		Matches: sortedValues(s.matches, func(m match.Match) int64 { return m.ID }),
		Players: sortedValues(s.players, func(p player.Player) int64 { return p.ID }),
		Stats:   sortedValues(s.stats, func(st playerstats.Stats) int64 { return st.ID }),
	}
}

func buildState(snapshot Snapshot) (*Store, error) {
	s := &Store{
		teams:   make(map[int64]team.Team, len(snapshot.Teams)),
		matches: make(map[int64]match.Match, len(snapshot.Matches)),
		players: make(map[int64]player.Player, len(snapshot.Players)),
		stats:   make(map[int64]playerstats.Stats, len(snapshot.Stats)),
	}

	for _, item := range snapshot.Teams {
		if item.ID <= 0 {
			return nil, fmt.Errorf("team %q: id must be positive", item.Name)
		}
		if _, ok := s.teams[item.ID]; ok {
			return nil, fmt.Errorf("team %d: duplicate id", item.ID)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("team %d: %w", item.ID, err)
		}
		if err := s.checkTeamLocked(item); err != nil {
			return nil, fmt.Errorf("team %d: %w", item.ID, err)
		}
		s.teams[item.ID] = item
		s.nextTeamID = max(s.nextTeamID, item.ID)
	}

	for _, item := range snapshot.Matches {
		if item.ID <= 0 {
			return nil, fmt.Errorf("match: id must be positive")
		}
		if _, ok := s.matches[item.ID]; ok {
			return nil, fmt.Errorf("match %d: duplicate id", item.ID)
		}
		item.MatchDate = match.Day(item.MatchDate)
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("match %d: %w", item.ID, err)
		}
		if err := s.checkMatchLocked(item); err != nil {
			return nil, fmt.Errorf("match %d: %w", item.ID, err)
		}
		s.matches[item.ID] = item
		s.nextMatchID = max(s.nextMatchID, item.ID)
	}

	for _, item := range snapshot.Players {
		if item.ID <= 0 {
			return nil, fmt.Errorf("player %q: id must be positive", item.Name)
		}
		if _, ok := s.players[item.ID]; ok {
			return nil, fmt.Errorf("player %d: duplicate id", item.ID)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("player %d: %w", item.ID, err)
		}
		if err := s.checkPlayerLocked(item); err != nil {
			return nil, fmt.Errorf("player %d: %w", item.ID, err)
		}
		s.players[item.ID] = item
		s.nextPlayerID = max(s.nextPlayerID, item.ID)
	}

	for _, item := range snapshot.Stats {
		if item.ID <= 0 {
			return nil, fmt.Errorf("stats: id must be positive")
		}
		if _, ok := s.stats[item.ID]; ok {
			return nil, fmt.Errorf("stats %d: duplicate id", item.ID)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("stats %d: %w", item.ID, err)
		}
		if err := s.checkStatsLocked(item); err != nil {
			return nil, fmt.Errorf("stats %d: %w", item.ID, err)
		}
		s.stats[item.ID] = item
		s.nextStatsID = max(s.nextStatsID, item.ID)
	}

	return s, nil
}

func (s *Store) checkTeamLocked(item team.Team) error {
	for _, existing := range s.teams {
		if existing.ID != item.ID && existing.Name == item.Name {
			return fmt.Errorf("%w: team name %q already exists", shared.ErrConflict, item.Name)
		}
	}
	return nil
}

func (s *Store) checkMatchLocked(item match.Match) error {
	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		if _, ok := s.teams[teamID]; !ok {
			return fmt.Errorf("%w: team %d does not exist", shared.ErrConflict, teamID)
		}
	}
	return nil
}

func (s *Store) checkPlayerLocked(item player.Player) error {
	if _, ok := s.teams[item.TeamID]; !ok {
		return fmt.Errorf("%w: team %d does not exist", shared.ErrConflict, item.TeamID)
	}
	return nil
}

func (s *Store) checkStatsLocked(item playerstats.Stats) error {
	if _, ok := s.players[item.PlayerID]; !ok {
		return fmt.Errorf("%w: player %d does not exist", shared.ErrConflict, item.PlayerID)
	}
	if _, ok := s.matches[item.MatchID]; !ok {
		return fmt.Errorf("%w: match %d does not exist", shared.ErrConflict, item.MatchID)
	}
	for _, existing := range s.stats {
		if existing.ID != item.ID && existing.PlayerID == item.PlayerID && existing.MatchID == item.MatchID {
			return fmt.Errorf("%w: stats for player %d in match %d already exist", shared.ErrConflict, item.PlayerID, item.MatchID)
		}
	}
	return nil
}

func sortedValues[T any](items map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

func paginate[T any](items []T, page shared.Page) []T {
	page = page.Normalize()
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+page.Limit, len(items))
	return items[start:end]
}

func errMissing(kind string, id int64) error {
	return fmt.Errorf("%s %d not found", kind, id)
}
