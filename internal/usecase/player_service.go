package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	statsRepo  playerstats.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, statsRepo playerstats.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		statsRepo:  statsRepo,
	}
}

func (s *PlayerService) Create(ctx context.Context, input player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	input.ID = 0
	input.Name = strings.TrimSpace(input.Name)
	input.Position = strings.TrimSpace(input.Position)
	if err := input.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.ensureTeam(ctx, input.TeamID); err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, input)
	if err != nil {
		return player.Player{}, wrapConflict(err, "invalid player data", "create player")
	}
	return created, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) List(ctx context.Context, filter player.ListFilter, page shared.Page) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID int64, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	current, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	next := current.Apply(patch)
	if err := next.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if next.TeamID != current.TeamID {
		if err := s.ensureTeam(ctx, next.TeamID); err != nil {
			return player.Player{}, err
		}
	}

	updated, err := s.playerRepo.Update(ctx, next)
	if err != nil {
		return player.Player{}, wrapConflict(err, "invalid player update", "update player")
	}
	return updated, nil
}

// Delete refuses to remove a player that stats still reference.
func (s *PlayerService) Delete(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, playerID); err != nil {
		return err
	}

	referenced, err := s.statsRepo.ExistsForPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("check player stats: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: player is referenced by stats", ErrConflict)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return wrapConflict(err, "player is referenced by other records", "delete player")
	}
	return nil
}

func (s *PlayerService) ensureTeam(ctx context.Context, teamID int64) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return nil
}
