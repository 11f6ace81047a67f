package memory

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

const seedDateLayout = "2006-01-02"

// DefaultSnapshot is the built-in dataset used when no seed file is set.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Teams:   SeedTeams(),
		Matches: SeedMatches(),
		Players: SeedPlayers(),
		Stats:   SeedStats(),
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Persija Jakarta", League: "Liga 1 Indonesia"},
		{ID: 2, Name: "Persib Bandung", League: "Liga 1 Indonesia"},
		{ID: 3, Name: "Persebaya Surabaya", League: "Liga 1 Indonesia"},
		{ID: 4, Name: "Bali United", League: "Liga 1 Indonesia"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1, MatchDate: seedDay(2025, 8, 9)},
		{ID: 2, HomeTeamID: 3, AwayTeamID: 4, HomeScore: 0, AwayScore: 0, MatchDate: seedDay(2025, 8, 10)},
		{ID: 3, HomeTeamID: 2, AwayTeamID: 3, HomeScore: 3, AwayScore: 1, MatchDate: seedDay(2025, 8, 16)},
		{ID: 4, HomeTeamID: 4, AwayTeamID: 1, HomeScore: 1, AwayScore: 1, MatchDate: seedDay(2025, 8, 17)},
		{ID: 5, HomeTeamID: 1, AwayTeamID: 3, HomeScore: 0, AwayScore: 2, MatchDate: seedDay(2025, 8, 23)},
		{ID: 6, HomeTeamID: 2, AwayTeamID: 4, HomeScore: 2, AwayScore: 2, MatchDate: seedDay(2025, 8, 24)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Gustavo Almeida", Position: "FWD", TeamID: 1},
		{ID: 2, Name: "Maciej Gajos", Position: "MID", TeamID: 1},
		{ID: 3, Name: "David da Silva", Position: "FWD", TeamID: 2},
		{ID: 4, Name: "Marc Klok", Position: "MID", TeamID: 2},
		{ID: 5, Name: "Bruno Moreira", Position: "MID", TeamID: 3},
		{ID: 6, Name: "Ricky Fajrin", Position: "DEF", TeamID: 4},
	}
}

func SeedStats() []playerstats.Stats {
	return []playerstats.Stats{
		{ID: 1, PlayerID: 1, MatchID: 1, Points: 8, Assists: 1, Errors: 0},
		{ID: 2, PlayerID: 1, MatchID: 4, Points: 6, Assists: 0, Errors: 1},
		{ID: 3, PlayerID: 1, MatchID: 5, Points: 3, Assists: 0, Errors: 2},
		{ID: 4, PlayerID: 2, MatchID: 1, Points: 5, Assists: 2, Errors: 0},
		{ID: 5, PlayerID: 2, MatchID: 4, Points: 6, Assists: 1, Errors: 0},
		{ID: 6, PlayerID: 2, MatchID: 5, Points: 7, Assists: 0, Errors: 1},
		{ID: 7, PlayerID: 3, MatchID: 1, Points: 4, Assists: 0, Errors: 1},
		{ID: 8, PlayerID: 3, MatchID: 3, Points: 9, Assists: 1, Errors: 0},
		{ID: 9, PlayerID: 3, MatchID: 6, Points: 4, Assists: 0, Errors: 0},
		{ID: 10, PlayerID: 5, MatchID: 3, Points: 2, Assists: 0, Errors: 1},
		{ID: 11, PlayerID: 5, MatchID: 5, Points: 7, Assists: 1, Errors: 0},
	}
}

func seedDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type seedFile struct {
	Teams []struct {
		ID     int64  `yaml:"id"`
		Name   string `yaml:"name"`
		League string `yaml:"league"`
	} `yaml:"teams"`
	Matches []struct {
		ID         int64  `yaml:"id"`
		HomeTeamID int64  `yaml:"home_team_id"`
		AwayTeamID int64  `yaml:"away_team_id"`
		HomeScore  int    `yaml:"home_score"`
		AwayScore  int    `yaml:"away_score"`
		MatchDate  string `yaml:"match_date"`
	} `yaml:"matches"`
	Players []struct {
		ID       int64  `yaml:"id"`
		Name     string `yaml:"name"`
		Position string `yaml:"position"`
		TeamID   int64  `yaml:"team_id"`
	} `yaml:"players"`
	Stats []struct {
		ID       int64 `yaml:"id"`
		PlayerID int64 `yaml:"player_id"`
		MatchID  int64 `yaml:"match_id"`
		Points   int   `yaml:"points"`
		Assists  int   `yaml:"assists"`
		Errors   int   `yaml:"errors"`
	} `yaml:"stats"`
}

// LoadSeedFile reads a YAML dataset. Match dates use the YYYY-MM-DD layout.
func LoadSeedFile(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, crerr.Wrapf(err, "read seed file %s", path)
	}
	snapshot, err := ParseSeed(raw)
	if err != nil {
		return Snapshot{}, crerr.Wrapf(err, "parse seed file %s", path)
	}
	return snapshot, nil
}

func ParseSeed(raw []byte) (Snapshot, error) {
	var doc seedFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Snapshot{}, crerr.Wrap(err, "decode yaml")
	}

	out := Snapshot{
		Teams:   make([]team.Team, 0, len(doc.Teams)),
		Matches: make([]match.Match, 0, len(doc.Matches)),
		Players: make([]player.Player, 0, len(doc.Players)),
		Stats:   make([]playerstats.Stats, 0, len(doc.Stats)),
	}
	for _, t := range doc.Teams {
		out.Teams = append(out.Teams, team.Team{
			ID:     t.ID,
			Name:   strings.TrimSpace(t.Name),
			League: strings.TrimSpace(t.League),
		})
	}
	for _, m := range doc.Matches {
		date, err := time.Parse(seedDateLayout, strings.TrimSpace(m.MatchDate))
		if err != nil {
			return Snapshot{}, fmt.Errorf("match %d: invalid match_date %q: %w", m.ID, m.MatchDate, err)
		}
		out.Matches = append(out.Matches, match.Match{
			ID:         m.ID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  m.HomeScore,
			AwayScore:  m.AwayScore,
			MatchDate:  date,
		})
	}
	for _, p := range doc.Players {
		out.Players = append(out.Players, player.Player{
			ID:       p.ID,
			Name:     strings.TrimSpace(p.Name),
			Position: strings.TrimSpace(p.Position),
			TeamID:   p.TeamID,
		})
	}
	for _, st := range doc.Stats {
		out.Stats = append(out.Stats, playerstats.Stats{
			ID:       st.ID,
			PlayerID: st.PlayerID,
			MatchID:  st.MatchID,
			Points:   st.Points,
			Assists:  st.Assists,
			Errors:   st.Errors,
		})
	}
	return out, nil
}
