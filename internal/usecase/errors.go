package usecase

import (
	"errors"

	"github.com/riskibarqy/sports-analytics/internal/domain/shared"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = shared.ErrConflict
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// isCallerError reports errors caused by the request rather than by a
// dependency.
func isCallerError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}
