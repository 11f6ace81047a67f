package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

type Handler struct {
	teamService      *usecase.TeamService
	matchService     *usecase.MatchService
	playerService    *usecase.PlayerService
	statsService     *usecase.PlayerStatsService
	analyticsService *usecase.AnalyticsService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	statsService *usecase.PlayerStatsService,
	analyticsService *usecase.AnalyticsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:      teamService,
		matchService:     matchService,
		playerService:    playerService,
		statsService:     statsService,
		analyticsService: analyticsService,
		logger:           logger,
		validator:        newValidator(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
