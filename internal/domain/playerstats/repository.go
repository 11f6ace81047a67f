package playerstats

import "context"

// Repository describes per-match player stat persistence. A (player, match)
// pair is unique.
type Repository interface {
	Create(ctx context.Context, item Stats) (Stats, error)
	GetByID(ctx context.Context, statsID int64) (Stats, bool, error)
	GetByPlayerAndMatch(ctx context.Context, playerID, matchID int64) (Stats, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Stats, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Stats, error)
	Update(ctx context.Context, item Stats) (Stats, error)
	Delete(ctx context.Context, statsID int64) error
	ExistsForPlayer(ctx context.Context, playerID int64) (bool, error)
	ExistsForMatch(ctx context.Context, matchID int64) (bool, error)
}
