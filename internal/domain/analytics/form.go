package analytics

import (
	"sort"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
)

// ComputeTeamForm summarises the team's last lastN matches. Matches not
// involving the team are ignored, so callers may pass any superset. Recency is
// match date desc, then match id desc.
func ComputeTeamForm(teamID int64, lastN int, matches []match.Match) TeamForm {
	out := TeamForm{
		TeamID:        teamID,
		LastN:         lastN,
		RecentResults: []Result{},
	}
	if lastN <= 0 {
		return out
	}

	involved := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Involves(teamID) {
			involved = append(involved, m)
		}
	}
	sort.SliceStable(involved, func(i, j int) bool {
		return moreRecent(involved[i], involved[j])
	})
	if len(involved) > lastN {
		involved = involved[:lastN]
	}

	for _, m := range involved {
		pointsFor, pointsAgainst := m.HomeScore, m.AwayScore
		if m.AwayTeamID == teamID {
			pointsFor, pointsAgainst = m.AwayScore, m.HomeScore
		}

		out.Played++
		out.PointsFor += pointsFor
		out.PointsAgainst += pointsAgainst
		switch {
		case pointsFor > pointsAgainst:
			out.Wins++
			out.RecentResults = append(out.RecentResults, ResultWin)
		case pointsFor < pointsAgainst:
			out.Losses++
			out.RecentResults = append(out.RecentResults, ResultLoss)
		default:
			out.Draws++
			out.RecentResults = append(out.RecentResults, ResultDraw)
		}
	}

	if out.Played > 0 {
		out.WinPercentage = Round4(float64(out.Wins) / float64(out.Played))
	}
	return out
}

func moreRecent(a, b match.Match) bool {
	if !a.MatchDate.Equal(b.MatchDate) {
		return a.MatchDate.After(b.MatchDate)
	}
	return a.ID > b.ID
}
