package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextPlayerID + 1
	if err := s.checkPlayerLocked(item); err != nil {
		return player.Player{}, err
	}
	s.nextPlayerID = item.ID
	s.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter, page shared.Page) ([]player.Player, error) {
	return paginate(r.collect(filter.TeamID), page), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	return r.collect(teamID), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[item.ID]; !ok {
		return player.Player{}, errMissing("player", item.ID)
	}
	if err := s.checkPlayerLocked(item); err != nil {
		return player.Player{}, err
	}
	s.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.stats {
		if st.PlayerID == playerID {
			return fmt.Errorf("%w: player %d is referenced by stats %d", shared.ErrConflict, playerID, st.ID)
		}
	}
	delete(s.players, playerID)
	return nil
}

func (r *PlayerRepository) ExistsForTeam(_ context.Context, teamID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.players {
		if p.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

// collect returns players ordered by id; teamID 0 keeps every player.
func (r *PlayerRepository) collect(teamID int64) []player.Player {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := sortedValues(r.store.players, func(p player.Player) int64 { return p.ID })
	if teamID <= 0 {
		return all
	}
	out := make([]player.Player, 0, len(all))
	for _, p := range all {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}
