package analytics

import (
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
)

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func game(id, home, away int64, homeScore, awayScore, d int) match.Match {
	return match.Match{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		MatchDate:  day(d),
	}
}
