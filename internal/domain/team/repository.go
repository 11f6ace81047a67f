package team

import (
	"context"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	List(ctx context.Context, page shared.Page) ([]Team, error)
	// ListAll returns every team ordered by id.
	ListAll(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Delete(ctx context.Context, teamID int64) error
}
