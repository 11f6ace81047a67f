package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, matchRepo match.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
	}
}

func (s *TeamService) Create(ctx context.Context, input team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.ID = 0
	input.Name = strings.TrimSpace(input.Name)
	input.League = strings.TrimSpace(input.League)
	if err := input.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.ensureNameAvailable(ctx, input.Name, 0); err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, input)
	if err != nil {
		return team.Team{}, wrapConflict(err, "team name already exists", "create team")
	}
	return created, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) List(ctx context.Context, page shared.Page) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Update(ctx context.Context, teamID int64, patch team.Patch) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	current, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	next := current.Apply(patch)
	if err := next.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if next.Name != current.Name {
		if err := s.ensureNameAvailable(ctx, next.Name, teamID); err != nil {
			return team.Team{}, err
		}
	}

	updated, err := s.teamRepo.Update(ctx, next)
	if err != nil {
		return team.Team{}, wrapConflict(err, "team name already exists", "update team")
	}
	return updated, nil
}

// Delete refuses to remove a team that matches or players still reference.
func (s *TeamService) Delete(ctx context.Context, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, teamID); err != nil {
		return err
	}

	referenced, err := s.matchRepo.ExistsForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("check team matches: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: team is referenced by matches", ErrConflict)
	}
	referenced, err = s.playerRepo.ExistsForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("check team players: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: team is referenced by players", ErrConflict)
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return wrapConflict(err, "team is referenced by other records", "delete team")
	}
	return nil
}

func (s *TeamService) ensureNameAvailable(ctx context.Context, name string, selfID int64) error {
	existing, exists, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get team by name: %w", err)
	}
	if exists && existing.ID != selfID {
		return fmt.Errorf("%w: team name already exists", ErrConflict)
	}
	return nil
}

// wrapConflict keeps repository conflicts recognisable while giving them a
// client-facing message.
func wrapConflict(err error, conflictMsg, op string) error {
	if errors.Is(err, shared.ErrConflict) {
		return fmt.Errorf("%w: %s", ErrConflict, conflictMsg)
	}
	return fmt.Errorf("%s: %w", op, err)
}
