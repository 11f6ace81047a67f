package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

func (h *Handler) TeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "TeamForm")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	lastN, err := queryInt(r, "last_n", h.analyticsService.Policy().DefaultLastN)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if lastN < 1 {
		writeError(ctx, w, fmt.Errorf("%w: last_n must be >= 1", usecase.ErrInvalidInput))
		return
	}

	form, err := h.analyticsService.TeamForm(ctx, teamID, lastN)
	if err != nil {
		h.logger.WarnContext(ctx, "team form failed", "team_id", teamID, "last_n", lastN, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFormToDTO(form))
}

func (h *Handler) LeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "LeagueTable")
	defer span.End()

	table, err := h.analyticsService.LeagueTable(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "league table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows, meta := leagueTableToDTO(table)
	writeSuccessWithMeta(ctx, w, http.StatusOK, rows, meta)
}

func (h *Handler) PlayerTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "PlayerTrend")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trend, err := h.analyticsService.PlayerTrend(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player trend failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTrendToDTO(trend))
}

func (h *Handler) TeamPlayerTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "TeamPlayerTrends")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trends, err := h.analyticsService.TeamPlayerTrends(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team player trends failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamPlayerTrendDTO, 0, len(trends))
	for _, item := range trends {
		items = append(items, teamPlayerTrendToDTO(item))
	}

	writeSuccessWithMeta(ctx, w, http.StatusOK, items, map[string]any{
		"team_id": teamID,
		"count":   len(items),
	})
}
