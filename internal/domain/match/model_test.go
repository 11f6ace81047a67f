package match

import (
	"testing"
	"time"
)

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		in      Match
		wantErr bool
	}{
		{name: "valid", in: Match{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 3, AwayScore: 1, MatchDate: day}},
		{name: "same teams", in: Match{HomeTeamID: 1, AwayTeamID: 1, MatchDate: day}, wantErr: true},
		{name: "negative score", in: Match{HomeTeamID: 1, AwayTeamID: 2, HomeScore: -1, MatchDate: day}, wantErr: true},
		{name: "score too high", in: Match{HomeTeamID: 1, AwayTeamID: 2, AwayScore: 1001, MatchDate: day}, wantErr: true},
		{name: "missing date", in: Match{HomeTeamID: 1, AwayTeamID: 2}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.in.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestListFilterMatches(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	filter := ListFilter{TeamID: 7, DateFrom: &from, DateTo: &to}

	in := Match{HomeTeamID: 7, AwayTeamID: 8, MatchDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)}
	if !filter.Matches(in) {
		t.Fatalf("expected match on the from-day to be included")
	}
	if filter.Matches(Match{HomeTeamID: 1, AwayTeamID: 2, MatchDate: in.MatchDate}) {
		t.Fatalf("expected other teams to be filtered out")
	}
	if filter.Matches(Match{HomeTeamID: 8, AwayTeamID: 7, MatchDate: time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)}) {
		t.Fatalf("expected match after date_to to be filtered out")
	}
}
