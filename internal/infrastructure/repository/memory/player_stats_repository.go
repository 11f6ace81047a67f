package memory

import (
	"context"

	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	store *Store
}

func NewPlayerStatsRepository(store *Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{store: store}
}

func (r *PlayerStatsRepository) Create(_ context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextStatsID + 1
	if err := s.checkStatsLocked(item); err != nil {
		return playerstats.Stats{}, err
	}
	s.nextStatsID = item.ID
	s.stats[item.ID] = item
	return item, nil
}

func (r *PlayerStatsRepository) GetByID(_ context.Context, statsID int64) (playerstats.Stats, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.stats[statsID]
	return item, ok, nil
}

func (r *PlayerStatsRepository) GetByPlayerAndMatch(_ context.Context, playerID, matchID int64) (playerstats.Stats, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.stats {
		if item.PlayerID == playerID && item.MatchID == matchID {
			return item, true, nil
		}
	}
	return playerstats.Stats{}, false, nil
}

func (r *PlayerStatsRepository) List(_ context.Context, filter playerstats.ListFilter) ([]playerstats.Stats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := sortedValues(r.store.stats, func(st playerstats.Stats) int64 { return st.ID })
	out := make([]playerstats.Stats, 0, len(all))
	for _, st := range all {
		if filter.Matches(st) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]playerstats.Stats, error) {
	return r.List(ctx, playerstats.ListFilter{PlayerID: playerID})
}

func (r *PlayerStatsRepository) Update(_ context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stats[item.ID]; !ok {
		return playerstats.Stats{}, errMissing("stats", item.ID)
	}
	if err := s.checkStatsLocked(item); err != nil {
		return playerstats.Stats{}, err
	}
	s.stats[item.ID] = item
	return item, nil
}

func (r *PlayerStatsRepository) Delete(_ context.Context, statsID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.stats, statsID)
	return nil
}

func (r *PlayerStatsRepository) ExistsForPlayer(_ context.Context, playerID int64) (bool, error) {
	return r.exists(func(st playerstats.Stats) bool { return st.PlayerID == playerID }), nil
}

func (r *PlayerStatsRepository) ExistsForMatch(_ context.Context, matchID int64) (bool, error) {
	return r.exists(func(st playerstats.Stats) bool { return st.MatchID == matchID }), nil
}

func (r *PlayerStatsRepository) exists(match func(playerstats.Stats) bool) bool {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, st := range r.store.stats {
		if match(st) {
			return true
		}
	}
	return false
}
