package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextMatchID + 1
	item.MatchDate = match.Day(item.MatchDate)
	if err := s.checkMatchLocked(item); err != nil {
		return match.Match{}, err
	}
	s.nextMatchID = item.ID
	s.matches[item.ID] = item
	return item, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) GetByIDs(_ context.Context, matchIDs []int64) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[int64]struct{}, len(matchIDs))
	out := make([]match.Match, 0, len(matchIDs))
	for _, id := range matchIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.store.matches[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter, page shared.Page) ([]match.Match, error) {
	return paginate(r.collect(filter.Matches), page), nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID int64) ([]match.Match, error) {
	return r.collect(func(m match.Match) bool { return m.Involves(teamID) }), nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sortedValues(r.store.matches, func(m match.Match) int64 { return m.ID }), nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (match.Match, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[item.ID]; !ok {
		return match.Match{}, errMissing("match", item.ID)
	}
	item.MatchDate = match.Day(item.MatchDate)
	if err := s.checkMatchLocked(item); err != nil {
		return match.Match{}, err
	}
	s.matches[item.ID] = item
	return item, nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.stats {
		if st.MatchID == matchID {
			return fmt.Errorf("%w: match %d is referenced by stats %d", shared.ErrConflict, matchID, st.ID)
		}
	}
	delete(s.matches, matchID)
	return nil
}

func (r *MatchRepository) ExistsForTeam(_ context.Context, teamID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.matches {
		if m.Involves(teamID) {
			return true, nil
		}
	}
	return false, nil
}

// collect returns matching rows ordered by match date desc, id desc.
func (r *MatchRepository) collect(keep func(match.Match) bool) []match.Match {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.store.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
