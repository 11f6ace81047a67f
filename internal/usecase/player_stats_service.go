package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
)

type PlayerStatsService struct {
	statsRepo  playerstats.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
}

func NewPlayerStatsService(statsRepo playerstats.Repository, playerRepo player.Repository, matchRepo match.Repository) *PlayerStatsService {
	return &PlayerStatsService{
		statsRepo:  statsRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

// Create records one player's line for one match. A second line for the same
// pair is a conflict.
func (s *PlayerStatsService) Create(ctx context.Context, input playerstats.Stats) (playerstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Create")
	defer span.End()

	input.ID = 0
	if err := input.Validate(); err != nil {
		return playerstats.Stats{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	_, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return playerstats.Stats{}, fmt.Errorf("%w: player=%d", ErrNotFound, input.PlayerID)
	}
	_, exists, err = s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return playerstats.Stats{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}

	_, exists, err = s.statsRepo.GetByPlayerAndMatch(ctx, input.PlayerID, input.MatchID)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("get stats by player and match: %w", err)
	}
	if exists {
		return playerstats.Stats{}, fmt.Errorf("%w: stats already exist for this player in this match", ErrConflict)
	}

	created, err := s.statsRepo.Create(ctx, input)
	if err != nil {
		return playerstats.Stats{}, wrapConflict(err, "stats already exist for this player in this match", "create stats")
	}
	return created, nil
}

func (s *PlayerStatsService) Get(ctx context.Context, statsID int64) (playerstats.Stats, error) {
	item, exists, err := s.statsRepo.GetByID(ctx, statsID)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	if !exists {
		return playerstats.Stats{}, fmt.Errorf("%w: stats=%d", ErrNotFound, statsID)
	}
	return item, nil
}

func (s *PlayerStatsService) List(ctx context.Context, filter playerstats.ListFilter) ([]playerstats.Stats, error) {
	items, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	return items, nil
}

func (s *PlayerStatsService) Update(ctx context.Context, statsID int64, patch playerstats.Patch) (playerstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Update")
	defer span.End()

	current, err := s.Get(ctx, statsID)
	if err != nil {
		return playerstats.Stats{}, err
	}

	next := current.Apply(patch)
	if err := next.Validate(); err != nil {
		return playerstats.Stats{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	updated, err := s.statsRepo.Update(ctx, next)
	if err != nil {
		return playerstats.Stats{}, fmt.Errorf("update stats: %w", err)
	}
	return updated, nil
}

func (s *PlayerStatsService) Delete(ctx context.Context, statsID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, statsID); err != nil {
		return err
	}
	if err := s.statsRepo.Delete(ctx, statsID); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}
	return nil
}
