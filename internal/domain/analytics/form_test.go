package analytics

import (
	"testing"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTeamForm_NoMatches(t *testing.T) {
	t.Parallel()

	got := ComputeTeamForm(1, 5, nil)

	assert.Equal(t, int64(1), got.TeamID)
	assert.Equal(t, 5, got.LastN)
	assert.Zero(t, got.Played)
	assert.Zero(t, got.Wins)
	assert.Zero(t, got.Losses)
	assert.Zero(t, got.Draws)
	assert.Zero(t, got.WinPercentage)
	require.NotNil(t, got.RecentResults)
	assert.Empty(t, got.RecentResults)
}

func TestComputeTeamForm_HomeWinThenAwayLoss(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		game(2, 2, 1, 3, 2, 8), // A away, loses 2-3
		game(1, 1, 2, 3, 1, 1), // A home, wins 3-1
	}

	got := ComputeTeamForm(1, 5, matches)

	assert.Equal(t, 2, got.Played)
	assert.Equal(t, 1, got.Wins)
	assert.Equal(t, 1, got.Losses)
	assert.Equal(t, 0, got.Draws)
	assert.Equal(t, 5, got.PointsFor)
	assert.Equal(t, 4, got.PointsAgainst)
	assert.Equal(t, 0.5, got.WinPercentage)
	assert.Equal(t, []Result{ResultLoss, ResultWin}, got.RecentResults)
}

func TestComputeTeamForm_LastNWindowAndTieBreak(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		game(10, 1, 2, 1, 1, 5), // same day as 11, lower id: older
		game(11, 3, 1, 0, 2, 5),
		game(12, 1, 4, 0, 1, 9),
		game(13, 1, 2, 4, 0, 1),
		game(14, 2, 3, 1, 0, 20), // not involving team 1
	}

	got := ComputeTeamForm(1, 3, matches)

	require.Len(t, got.RecentResults, 3)
	assert.Equal(t, []Result{ResultLoss, ResultWin, ResultDraw}, got.RecentResults)
	assert.Equal(t, 3, got.Played)
	assert.Equal(t, 3, got.PointsFor)
	assert.Equal(t, 2, got.PointsAgainst)
	assert.Equal(t, 0.3333, got.WinPercentage)
}

func TestComputeTeamForm_ResultsNeverExceedLastN(t *testing.T) {
	t.Parallel()

	var matches []match.Match
	for i := 1; i <= 7; i++ {
		matches = append(matches, game(int64(i), 1, 2, i, 3, i))
	}

	for lastN := 1; lastN <= 10; lastN++ {
		got := ComputeTeamForm(1, lastN, matches)
		want := lastN
		if want > len(matches) {
			want = len(matches)
		}
		assert.Len(t, got.RecentResults, want, "last_n=%d", lastN)
		assert.Equal(t, want, got.Played, "last_n=%d", lastN)
	}
}

func TestComputeTeamForm_NonPositiveLastN(t *testing.T) {
	t.Parallel()

	got := ComputeTeamForm(1, 0, []match.Match{game(1, 1, 2, 1, 0, 1)})
	assert.Zero(t, got.Played)
	assert.Empty(t, got.RecentResults)
}

func TestComputeTeamForm_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	matches := []match.Match{game(1, 1, 2, 1, 0, 1), game(2, 1, 2, 0, 1, 2)}
	_ = ComputeTeamForm(1, 5, matches)

	assert.Equal(t, int64(1), matches[0].ID)
	assert.Equal(t, int64(2), matches[1].ID)
}
