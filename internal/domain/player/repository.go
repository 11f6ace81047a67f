package player

import (
	"context"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	List(ctx context.Context, filter ListFilter, page shared.Page) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	Update(ctx context.Context, item Player) (Player, error)
	Delete(ctx context.Context, playerID int64) error
	ExistsForTeam(ctx context.Context, teamID int64) (bool, error)
}
