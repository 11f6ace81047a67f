package cache

import (
	"context"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	basecache "github.com/riskibarqy/sports-analytics/internal/platform/cache"
	"github.com/riskibarqy/sports-analytics/internal/platform/resilience"
)

const (
	teamPrefix   = "team:"
	matchPrefix  = "match:"
	playerPrefix = "player:"
	statsPrefix  = "stats:"
)

// guard routes every call to the backing repository through an optional
// circuit breaker. Conflicts are caller errors and never trip it.
type guard struct {
	cache   *basecache.Store
	breaker *resilience.CircuitBreaker
}

func (g guard) do(fn func() error) error {
	return g.breaker.Do(fn, func(err error) bool {
		return !crerr.Is(err, shared.ErrConflict)
	})
}

func (g guard) invalidate(ctx context.Context, prefixes ...string) {
	g.cache.DeletePrefix(ctx, prefixes...)
}

type cachedByID[T any] struct {
	value  T
	exists bool
}

func loadByID[T any](ctx context.Context, g guard, key string, fetch func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := basecache.Load(ctx, g.cache, key, func(ctx context.Context) (cachedByID[T], error) {
		var out cachedByID[T]
		err := g.do(func() error {
			var err error
			out.value, out.exists, err = fetch(ctx)
			return err
		})
		return out, err
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v.value, v.exists, nil
}

func loadList[T any](ctx context.Context, g guard, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, g.cache, key, func(ctx context.Context) ([]T, error) {
		var out []T
		err := g.do(func() error {
			var err error
			out, err = fetch(ctx)
			return err
		})
		return append([]T(nil), out...), err
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

func idKey(prefix, kind string, id int64) string {
	return prefix + kind + ":" + strconv.FormatInt(id, 10)
}

type TeamRepository struct {
	next team.Repository
	guard
}

func NewTeamRepository(next team.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *TeamRepository {
	return &TeamRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	var out team.Team
	err := r.do(func() error {
		var err error
		out, err = r.next.Create(ctx, item)
		return err
	})
	r.invalidate(ctx, teamPrefix)
	return out, err
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return loadByID(ctx, r.guard, idKey(teamPrefix, "id", teamID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	var (
		out    team.Team
		exists bool
	)
	err := r.do(func() error {
		var err error
		out, exists, err = r.next.GetByName(ctx, name)
		return err
	})
	return out, exists, err
}

func (r *TeamRepository) List(ctx context.Context, page shared.Page) ([]team.Team, error) {
	var out []team.Team
	err := r.do(func() error {
		var err error
		out, err = r.next.List(ctx, page)
		return err
	})
	return out, err
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	return loadList(ctx, r.guard, teamPrefix+"all", r.next.ListAll)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	var out team.Team
	err := r.do(func() error {
		var err error
		out, err = r.next.Update(ctx, item)
		return err
	})
	r.invalidate(ctx, teamPrefix)
	return out, err
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	err := r.do(func() error { return r.next.Delete(ctx, teamID) })
	r.invalidate(ctx, teamPrefix)
	return err
}

type MatchRepository struct {
	next match.Repository
	guard
}

func NewMatchRepository(next match.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *MatchRepository {
	return &MatchRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	var out match.Match
	err := r.do(func() error {
		var err error
		out, err = r.next.Create(ctx, item)
		return err
	})
	r.invalidate(ctx, matchPrefix)
	return out, err
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return loadByID(ctx, r.guard, idKey(matchPrefix, "id", matchID), func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, matchID)
	})
}

func (r *MatchRepository) GetByIDs(ctx context.Context, matchIDs []int64) ([]match.Match, error) {
	var out []match.Match
	err := r.do(func() error {
		var err error
		out, err = r.next.GetByIDs(ctx, matchIDs)
		return err
	})
	return out, err
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter, page shared.Page) ([]match.Match, error) {
	var out []match.Match
	err := r.do(func() error {
		var err error
		out, err = r.next.List(ctx, filter, page)
		return err
	})
	return out, err
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	return loadList(ctx, r.guard, idKey(matchPrefix, "team", teamID), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	return loadList(ctx, r.guard, matchPrefix+"all", r.next.ListAll)
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, error) {
	var out match.Match
	err := r.do(func() error {
		var err error
		out, err = r.next.Update(ctx, item)
		return err
	})
	r.invalidate(ctx, matchPrefix)
	return out, err
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	err := r.do(func() error { return r.next.Delete(ctx, matchID) })
	r.invalidate(ctx, matchPrefix)
	return err
}

func (r *MatchRepository) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	var out bool
	err := r.do(func() error {
		var err error
		out, err = r.next.ExistsForTeam(ctx, teamID)
		return err
	})
	return out, err
}

type PlayerRepository struct {
	next player.Repository
	guard
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	var out player.Player
	err := r.do(func() error {
		var err error
		out, err = r.next.Create(ctx, item)
		return err
	})
	r.invalidate(ctx, playerPrefix)
	return out, err
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return loadByID(ctx, r.guard, idKey(playerPrefix, "id", playerID), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter, page shared.Page) ([]player.Player, error) {
	var out []player.Player
	err := r.do(func() error {
		var err error
		out, err = r.next.List(ctx, filter, page)
		return err
	})
	return out, err
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	return loadList(ctx, r.guard, idKey(playerPrefix, "team", teamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	var out player.Player
	err := r.do(func() error {
		var err error
		out, err = r.next.Update(ctx, item)
		return err
	})
	r.invalidate(ctx, playerPrefix)
	return out, err
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	err := r.do(func() error { return r.next.Delete(ctx, playerID) })
	r.invalidate(ctx, playerPrefix)
	return err
}

func (r *PlayerRepository) ExistsForTeam(ctx context.Context, teamID int64) (bool, error) {
	var out bool
	err := r.do(func() error {
		var err error
		out, err = r.next.ExistsForTeam(ctx, teamID)
		return err
	})
	return out, err
}

type PlayerStatsRepository struct {
	next playerstats.Repository
	guard
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *PlayerStatsRepository) Create(ctx context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	var out playerstats.Stats
	err := r.do(func() error {
		var err error
		out, err = r.next.Create(ctx, item)
		return err
	})
	r.invalidate(ctx, statsPrefix)
	return out, err
}

func (r *PlayerStatsRepository) GetByID(ctx context.Context, statsID int64) (playerstats.Stats, bool, error) {
	var (
		out    playerstats.Stats
		exists bool
	)
	err := r.do(func() error {
		var err error
		out, exists, err = r.next.GetByID(ctx, statsID)
		return err
	})
	return out, exists, err
}

func (r *PlayerStatsRepository) GetByPlayerAndMatch(ctx context.Context, playerID, matchID int64) (playerstats.Stats, bool, error) {
	var (
		out    playerstats.Stats
		exists bool
	)
	err := r.do(func() error {
		var err error
		out, exists, err = r.next.GetByPlayerAndMatch(ctx, playerID, matchID)
		return err
	})
	return out, exists, err
}

func (r *PlayerStatsRepository) List(ctx context.Context, filter playerstats.ListFilter) ([]playerstats.Stats, error) {
	var out []playerstats.Stats
	err := r.do(func() error {
		var err error
		out, err = r.next.List(ctx, filter)
		return err
	})
	return out, err
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]playerstats.Stats, error) {
	return loadList(ctx, r.guard, idKey(statsPrefix, "player", playerID), func(ctx context.Context) ([]playerstats.Stats, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
}

func (r *PlayerStatsRepository) Update(ctx context.Context, item playerstats.Stats) (playerstats.Stats, error) {
	var out playerstats.Stats
	err := r.do(func() error {
		var err error
		out, err = r.next.Update(ctx, item)
		return err
	})
	r.invalidate(ctx, statsPrefix)
	return out, err
}

func (r *PlayerStatsRepository) Delete(ctx context.Context, statsID int64) error {
	err := r.do(func() error { return r.next.Delete(ctx, statsID) })
	r.invalidate(ctx, statsPrefix)
	return err
}

func (r *PlayerStatsRepository) ExistsForPlayer(ctx context.Context, playerID int64) (bool, error) {
	var out bool
	err := r.do(func() error {
		var err error
		out, err = r.next.ExistsForPlayer(ctx, playerID)
		return err
	})
	return out, err
}

func (r *PlayerStatsRepository) ExistsForMatch(ctx context.Context, matchID int64) (bool, error) {
	var out bool
	err := r.do(func() error {
		var err error
		out, err = r.next.ExistsForMatch(ctx, matchID)
		return err
	})
	return out, err
}
