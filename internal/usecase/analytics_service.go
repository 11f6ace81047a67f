package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sports-analytics/internal/domain/analytics"
	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// AnalyticsPolicy holds the tunable knobs of the analytics endpoints.
type AnalyticsPolicy struct {
	DefaultLastN int
	MaxLastN     int
	Trend        analytics.TrendPolicy
	Workers      int
}

func DefaultAnalyticsPolicy() AnalyticsPolicy {
	return AnalyticsPolicy{
		DefaultLastN: 5,
		MaxLastN:     50,
		Trend:        analytics.DefaultTrendPolicy(),
		Workers:      8,
	}
}

type PlayerTrendItem struct {
	Player player.Player
	Trend  analytics.PlayerTrend
}

type AnalyticsService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	policy     AnalyticsPolicy
	logger     *logging.Logger
}

func NewAnalyticsService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	policy AnalyticsPolicy,
	logger *logging.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}
	defaults := DefaultAnalyticsPolicy()
	if policy.DefaultLastN <= 0 {
		policy.DefaultLastN = defaults.DefaultLastN
	}
	if policy.MaxLastN <= 0 {
		policy.MaxLastN = defaults.MaxLastN
	}
	if policy.Workers <= 0 {
		policy.Workers = defaults.Workers
	}

	return &AnalyticsService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (s *AnalyticsService) Policy() AnalyticsPolicy {
	return s.policy
}

// TeamForm returns the team's form over its last lastN matches. A zero lastN
// means the configured default.
func (s *AnalyticsService) TeamForm(ctx context.Context, teamID int64, lastN int) (_ analytics.TeamForm, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TeamForm", teamAttr(teamID))
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return analytics.TeamForm{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	if lastN == 0 {
		lastN = s.policy.DefaultLastN
	}
	if lastN < 1 || lastN > s.policy.MaxLastN {
		return analytics.TeamForm{}, fmt.Errorf("%w: last_n must be between 1 and %d", ErrInvalidInput, s.policy.MaxLastN)
	}

	if _, err := s.requireTeam(ctx, teamID); err != nil {
		return analytics.TeamForm{}, err
	}

	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return analytics.TeamForm{}, fmt.Errorf("list matches by team: %w", err)
	}

	return analytics.ComputeTeamForm(teamID, lastN, matches), nil
}

// LeagueTable ranks every known team over every known match.
func (s *AnalyticsService) LeagueTable(ctx context.Context) (_ analytics.LeagueTable, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.LeagueTable")
	defer func() { endSpan(span, err) }()

	var (
		teams   []team.Team
		matches []match.Match
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return analytics.LeagueTable{}, err
	}

	table := analytics.BuildLeagueTable(teams, matches)
	if table.ExcludedMatches > 0 {
		s.logger.WarnContext(ctx, "league table skipped matches with unknown teams",
			"excluded_matches", table.ExcludedMatches,
			"match_count", len(matches),
		)
	}

	return table, nil
}

// PlayerTrend summarises the player's per-match stats in chronological order.
func (s *AnalyticsService) PlayerTrend(ctx context.Context, playerID int64) (_ analytics.PlayerTrend, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PlayerTrend", playerAttr(playerID))
	defer func() { endSpan(span, err) }()

	if playerID <= 0 {
		return analytics.PlayerTrend{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return analytics.PlayerTrend{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return analytics.PlayerTrend{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return s.playerTrend(ctx, playerID)
}

// TeamPlayerTrends computes the trend of every player on the team, ordered by
// player id.
func (s *AnalyticsService) TeamPlayerTrends(ctx context.Context, teamID int64) (_ []PlayerTrendItem, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TeamPlayerTrends", teamAttr(teamID))
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	if _, err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	if len(players) == 0 {
		return []PlayerTrendItem{}, nil
	}

	workers := s.policy.Workers
	if workers > len(players) {
		workers = len(players)
	}
	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		mu       sync.Mutex
		out      = make([]PlayerTrendItem, 0, len(players))
		firstErr error
		wg       sync.WaitGroup
	)
	for _, item := range players {
		item := item
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			trend, err := s.playerTrend(ctx, item.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("player=%d: %w", item.ID, err)
				}
				return
			}
			out = append(out, PlayerTrendItem{Player: item, Trend: trend})
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit trend task to worker pool: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Player.ID < out[j].Player.ID
	})
	return out, nil
}

func (s *AnalyticsService) playerTrend(ctx context.Context, playerID int64) (analytics.PlayerTrend, error) {
	stats, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return analytics.PlayerTrend{}, fmt.Errorf("list player stats: %w", err)
	}
	if len(stats) == 0 {
		return analytics.ComputePlayerTrend(playerID, nil, nil, s.policy.Trend), nil
	}

	matchIDs := make([]int64, 0, len(stats))
	seen := make(map[int64]struct{}, len(stats))
	for _, item := range stats {
		if _, ok := seen[item.MatchID]; ok {
			continue
		}
		seen[item.MatchID] = struct{}{}
		matchIDs = append(matchIDs, item.MatchID)
	}

	matches, err := s.matchRepo.GetByIDs(ctx, matchIDs)
	if err != nil {
		return analytics.PlayerTrend{}, fmt.Errorf("get matches by ids: %w", err)
	}
	dates := make(map[int64]time.Time, len(matches))
	for _, m := range matches {
		dates[m.ID] = m.MatchDate
	}
	if len(dates) < len(matchIDs) {
		s.logger.DebugContext(ctx, "player trend has stats for unknown matches",
			"player_id", playerID,
			"missing", len(matchIDs)-len(dates),
		)
	}

	return analytics.ComputePlayerTrend(playerID, stats, dates, s.policy.Trend), nil
}

func (s *AnalyticsService) requireTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}
