package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	statsRepo playerstats.Repository
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, statsRepo playerstats.Repository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
	}
}

func (s *MatchService) Create(ctx context.Context, input match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	input.ID = 0
	input.MatchDate = match.Day(input.MatchDate)
	if err := input.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.ensureTeams(ctx, input); err != nil {
		return match.Match{}, err
	}

	created, err := s.matchRepo.Create(ctx, input)
	if err != nil {
		return match.Match{}, wrapConflict(err, "invalid match data", "create match")
	}
	return created, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return item, nil
}

// List is ordered by match date desc, id desc.
func (s *MatchService) List(ctx context.Context, filter match.ListFilter, page shared.Page) ([]match.Match, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, fmt.Errorf("%w: date_from must not be after date_to", ErrInvalidInput)
	}

	items, err := s.matchRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Update(ctx context.Context, matchID int64, patch match.Patch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	current, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	next := current.Apply(patch)
	if err := next.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if next.HomeTeamID != current.HomeTeamID || next.AwayTeamID != current.AwayTeamID {
		if err := s.ensureTeams(ctx, next); err != nil {
			return match.Match{}, err
		}
	}

	updated, err := s.matchRepo.Update(ctx, next)
	if err != nil {
		return match.Match{}, wrapConflict(err, "invalid match update", "update match")
	}
	return updated, nil
}

// Delete refuses to remove a match that player stats still reference.
func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, matchID); err != nil {
		return err
	}

	referenced, err := s.statsRepo.ExistsForMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("check match stats: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: match is referenced by player stats", ErrConflict)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return wrapConflict(err, "match is referenced by other records", "delete match")
	}
	return nil
}

func (s *MatchService) ensureTeams(ctx context.Context, m match.Match) error {
	for _, side := range []struct {
		label string
		id    int64
	}{
		{label: "home team", id: m.HomeTeamID},
		{label: "away team", id: m.AwayTeamID},
	} {
		_, exists, err := s.teamRepo.GetByID(ctx, side.id)
		if err != nil {
			return fmt.Errorf("get %s: %w", side.label, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s=%d", ErrNotFound, side.label, side.id)
		}
	}
	return nil
}
