package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextTeamID + 1
	if err := s.checkTeamLocked(item); err != nil {
		return team.Team{}, err
	}
	s.nextTeamID = item.ID
	s.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.teams {
		if item.Name == name {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) List(ctx context.Context, page shared.Page) ([]team.Team, error) {
	items, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(items, page), nil
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sortedValues(r.store.teams, func(t team.Team) int64 { return t.ID }), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[item.ID]; !ok {
		return team.Team{}, errMissing("team", item.ID)
	}
	if err := s.checkTeamLocked(item); err != nil {
		return team.Team{}, err
	}
	s.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.matches {
		if m.Involves(teamID) {
			return fmt.Errorf("%w: team %d is referenced by match %d", shared.ErrConflict, teamID, m.ID)
		}
	}
	for _, p := range s.players {
		if p.TeamID == teamID {
			return fmt.Errorf("%w: team %d is referenced by player %d", shared.ErrConflict, teamID, p.ID)
		}
	}
	delete(s.teams, teamID)
	return nil
}
