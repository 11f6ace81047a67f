package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTrendThreshold is the slope magnitude, in points per match, above
// which a trend stops being stable.
const DefaultTrendThreshold = 0.1

type TrendPolicy struct {
	Threshold float64
}

func DefaultTrendPolicy() TrendPolicy {
	return TrendPolicy{Threshold: DefaultTrendThreshold}
}

// Classify maps a slope onto a trend. The comparison is strict on both sides.
func (p TrendPolicy) Classify(slope float64) Trend {
	switch {
	case slope > p.Threshold:
		return TrendImproving
	case slope < -p.Threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ComputePlayerTrend orders the player's stat lines chronologically using
// matchDates (keyed by match id) and derives averages, the best match and the
// least-squares trend of points per match. Lines whose match date is unknown
// sort after dated ones. On equal best points the earliest line wins.
func ComputePlayerTrend(playerID int64, stats []playerstats.Stats, matchDates map[int64]time.Time, policy TrendPolicy) PlayerTrend {
	out := PlayerTrend{PlayerID: playerID, Trend: TrendStable}
	if len(stats) == 0 {
		return out
	}

	ordered := append([]playerstats.Stats(nil), stats...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return playedBefore(ordered[i], ordered[j], matchDates)
	})

	var sumPoints, sumAssists, sumErrors float64
	points := make([]float64, len(ordered))
	best := 0
	for i, s := range ordered {
		points[i] = float64(s.Points)
		sumPoints += float64(s.Points)
		sumAssists += float64(s.Assists)
		sumErrors += float64(s.Errors)
		if s.Points > ordered[best].Points {
			best = i
		}
	}

	n := float64(len(ordered))
	bestMatchID := ordered[best].MatchID
	bestPoints := ordered[best].Points
	slope := Slope(points)

	out.MatchesPlayed = len(ordered)
	out.AvgPoints = Round4(sumPoints / n)
	out.AvgAssists = Round4(sumAssists / n)
	out.AvgErrors = Round4(sumErrors / n)
	out.BestMatchID = &bestMatchID
	out.BestMatchPoints = &bestPoints
	out.Slope = Round4(slope)
	out.Trend = policy.Classify(slope)
	return out
}

// Slope is the ordinary least-squares slope of ys against x = 0..n-1. It is
// 0 for fewer than two values or when the fit is not finite.
func Slope(ys []float64) float64 {
	if len(ys) < 2 {
		return 0
	}
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	_, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0
	}
	return beta
}

func playedBefore(a, b playerstats.Stats, matchDates map[int64]time.Time) bool {
	da, okA := matchDates[a.MatchID]
	db, okB := matchDates[b.MatchID]
	if okA != okB {
		return okA
	}
	if okA && !da.Equal(db) {
		return da.Before(db)
	}
	if a.MatchID != b.MatchID {
		return a.MatchID < b.MatchID
	}
	return a.ID < b.ID
}
