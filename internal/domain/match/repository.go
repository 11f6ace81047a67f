package match

import (
	"context"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Match) (Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	GetByIDs(ctx context.Context, matchIDs []int64) ([]Match, error)
	// List is ordered by match date desc, id desc.
	List(ctx context.Context, filter ListFilter, page shared.Page) ([]Match, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Match, error)
	ListAll(ctx context.Context) ([]Match, error)
	Update(ctx context.Context, item Match) (Match, error)
	Delete(ctx context.Context, matchID int64) error
	ExistsForTeam(ctx context.Context, teamID int64) (bool, error)
}
