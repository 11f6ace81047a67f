package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/interfaces/present"
)

const testSeed = `teams:
  - id: 1
    name: North
  - id: 2
    name: South
matches:
  - id: 1
    home_team_id: 1
    away_team_id: 2
    home_score: 2
    away_score: 0
    match_date: "2025-03-01"
  - id: 2
    home_team_id: 2
    away_team_id: 1
    home_score: 1
    away_score: 1
    match_date: "2025-03-08"
players:
  - id: 1
    name: Striker
    team_id: 1
stats:
  - id: 1
    player_id: 1
    match_id: 1
    points: 4
    assists: 0
    errors: 0
  - id: 2
    player_id: 1
    match_id: 2
    points: 9
    assists: 1
    errors: 0
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "dev")
	t.Setenv("UPTRACE_ENABLED", "false")

	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(testSeed), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--seed", seed))
	err := root.Execute()
	return out.String(), err
}

func TestFormCommand(t *testing.T) {
	out, err := runCLI(t, "form", "--team", "1", "--last-n", "2")
	require.NoError(t, err)

	var form present.TeamForm
	require.NoError(t, sonic.UnmarshalString(out, &form))
	assert.Equal(t, 2, form.Played)
	assert.Equal(t, []string{"D", "W"}, form.RecentResults)
	assert.Equal(t, 0.5, form.WinPercentage)
}

func TestTableCommand(t *testing.T) {
	out, err := runCLI(t, "table")
	require.NoError(t, err)

	var table present.LeagueTable
	require.NoError(t, sonic.UnmarshalString(out, &table))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, int64(1), table.Rows[0].TeamID)
	assert.Equal(t, 4, table.Rows[0].Points)
}

func TestTrendCommand(t *testing.T) {
	out, err := runCLI(t, "trend", "--player", "1")
	require.NoError(t, err)

	var trend present.PlayerTrend
	require.NoError(t, sonic.UnmarshalString(out, &trend))
	assert.Equal(t, 2, trend.MatchesPlayed)
	assert.Equal(t, "improving", trend.Trend)
	assert.Equal(t, 6.5, trend.AvgPoints)
}

func TestTrendCommand_RequiresPlayer(t *testing.T) {
	_, err := runCLI(t, "trend")
	assert.Error(t, err)
}

func TestFormCommand_UnknownTeam(t *testing.T) {
	_, err := runCLI(t, "form", "--team", "9")
	assert.Error(t, err)
}
