package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	matchmock "github.com/riskibarqy/sports-analytics/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/sports-analytics/internal/mocks/domain/player"
	playerstatsmock "github.com/riskibarqy/sports-analytics/internal/mocks/domain/playerstats"
	teammock "github.com/riskibarqy/sports-analytics/internal/mocks/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Create_DuplicateName(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	svc := NewTeamService(teams, matchmock.NewRepository(t), playermock.NewRepository(t))

	teams.On("GetByName", mock.Anything, "Leeds Gryphons").Return(team.Team{ID: 3, Name: "Leeds Gryphons"}, true, nil).Once()

	_, err := svc.Create(context.Background(), team.Team{Name: "  Leeds Gryphons "})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_Create_RepositoryConflictIsMapped(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	svc := NewTeamService(teams, matchmock.NewRepository(t), playermock.NewRepository(t))

	teams.On("GetByName", mock.Anything, "Racers").Return(team.Team{}, false, nil).Once()
	teams.On("Create", mock.Anything, team.Team{Name: "Racers", League: "BUCS"}).
		Return(team.Team{}, errors.Join(shared.ErrConflict, errors.New("pq: duplicate key"))).Once()

	_, err := svc.Create(context.Background(), team.Team{ID: 99, Name: "Racers", League: " BUCS "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "team name already exists")
}

func TestTeamService_Create_InvalidName(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(teammock.NewRepository(t), matchmock.NewRepository(t), playermock.NewRepository(t))

	_, err := svc.Create(context.Background(), team.Team{Name: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Update_RenameToOwnNameIsAllowed(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	svc := NewTeamService(teams, matchmock.NewRepository(t), playermock.NewRepository(t))

	league := "BUCS North"
	teams.On("GetByID", mock.Anything, int64(4)).Return(team.Team{ID: 4, Name: "Racers", League: "BUCS"}, true, nil).Once()
	teams.On("Update", mock.Anything, team.Team{ID: 4, Name: "Racers", League: "BUCS North"}).
		Return(team.Team{ID: 4, Name: "Racers", League: "BUCS North"}, nil).Once()

	got, err := svc.Update(context.Background(), 4, team.Patch{League: &league})
	require.NoError(t, err)
	assert.Equal(t, "BUCS North", got.League)
}

func TestTeamService_Delete_ReferencedByMatch(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	svc := NewTeamService(teams, matches, playermock.NewRepository(t))

	teams.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1, Name: "A"}, true, nil).Once()
	matches.On("ExistsForTeam", mock.Anything, int64(1)).Return(true, nil).Once()

	err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_Delete_Unreferenced(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	players := playermock.NewRepository(t)
	svc := NewTeamService(teams, matches, players)

	teams.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1, Name: "A"}, true, nil).Once()
	matches.On("ExistsForTeam", mock.Anything, int64(1)).Return(false, nil).Once()
	players.On("ExistsForTeam", mock.Anything, int64(1)).Return(false, nil).Once()
	teams.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), 1))
}

func TestMatchService_Create_MissingAwayTeam(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	svc := NewMatchService(matchmock.NewRepository(t), teams, playerstatsmock.NewRepository(t))

	teams.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1}, true, nil).Once()
	teams.On("GetByID", mock.Anything, int64(2)).Return(team.Team{}, false, nil).Once()

	_, err := svc.Create(context.Background(), match.Match{
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeScore:  3,
		AwayScore:  1,
		MatchDate:  time.Date(2026, 2, 10, 18, 30, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Create_TruncatesDate(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	teams := teammock.NewRepository(t)
	svc := NewMatchService(matches, teams, playerstatsmock.NewRepository(t))

	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	teams.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(team.Team{ID: 1}, true, nil).Twice()
	matches.On("Create", mock.Anything, mock.MatchedBy(func(m match.Match) bool {
		return m.MatchDate.Equal(day)
	})).Return(match.Match{ID: 5, HomeTeamID: 1, AwayTeamID: 2, MatchDate: day}, nil).Once()

	got, err := svc.Create(context.Background(), match.Match{
		HomeTeamID: 1,
		AwayTeamID: 2,
		MatchDate:  time.Date(2026, 2, 10, 18, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestMatchService_Create_SameTeams(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(matchmock.NewRepository(t), teammock.NewRepository(t), playerstatsmock.NewRepository(t))

	_, err := svc.Create(context.Background(), match.Match{HomeTeamID: 1, AwayTeamID: 1, MatchDate: time.Now()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_List_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(matchmock.NewRepository(t), teammock.NewRepository(t), playerstatsmock.NewRepository(t))
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), match.ListFilter{DateFrom: &from, DateTo: &to}, shared.Page{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Delete_ReferencedByStats(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	stats := playerstatsmock.NewRepository(t)
	svc := NewMatchService(matches, teammock.NewRepository(t), stats)

	matches.On("GetByID", mock.Anything, int64(8)).Return(match.Match{ID: 8}, true, nil).Once()
	stats.On("ExistsForMatch", mock.Anything, int64(8)).Return(true, nil).Once()

	err := svc.Delete(context.Background(), 8)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPlayerService_Update_MovesToMissingTeam(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	teams := teammock.NewRepository(t)
	svc := NewPlayerService(players, teams, playerstatsmock.NewRepository(t))

	target := int64(42)
	players.On("GetByID", mock.Anything, int64(3)).Return(player.Player{ID: 3, Name: "Sam", TeamID: 1}, true, nil).Once()
	teams.On("GetByID", mock.Anything, target).Return(team.Team{}, false, nil).Once()

	_, err := svc.Update(context.Background(), 3, player.Patch{TeamID: &target})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_Create_Duplicate(t *testing.T) {
	t.Parallel()

	stats := playerstatsmock.NewRepository(t)
	players := playermock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	svc := NewPlayerStatsService(stats, players, matches)

	players.On("GetByID", mock.Anything, int64(7)).Return(player.Player{ID: 7}, true, nil).Once()
	matches.On("GetByID", mock.Anything, int64(9)).Return(match.Match{ID: 9}, true, nil).Once()
	stats.On("GetByPlayerAndMatch", mock.Anything, int64(7), int64(9)).Return(playerstats.Stats{ID: 1}, true, nil).Once()

	_, err := svc.Create(context.Background(), playerstats.Stats{PlayerID: 7, MatchID: 9, Points: 12})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPlayerStatsService_Update_AppliesPatch(t *testing.T) {
	t.Parallel()

	stats := playerstatsmock.NewRepository(t)
	svc := NewPlayerStatsService(stats, playermock.NewRepository(t), matchmock.NewRepository(t))

	points := 30
	current := playerstats.Stats{ID: 1, PlayerID: 7, MatchID: 9, Points: 12, Assists: 4}
	want := current
	want.Points = 30

	stats.On("GetByID", mock.Anything, int64(1)).Return(current, true, nil).Once()
	stats.On("Update", mock.Anything, want).Return(want, nil).Once()

	got, err := svc.Update(context.Background(), 1, playerstats.Patch{Points: &points})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
