package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
)

func (h *Handler) CreatePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayerStats")
	defer span.End()

	var req playerStatsCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statsService.Create(ctx, playerstats.Stats{
		PlayerID: req.PlayerID,
		MatchID:  req.MatchID,
		Points:   *req.Points,
		Assists:  *req.Assists,
		Errors:   *req.Errors,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player stats failed",
			"player_id", req.PlayerID,
			"match_id", req.MatchID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerStatsToDTO(item))
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayerStats")
	defer span.End()

	matchID, err := queryID(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := queryID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.List(ctx, playerstats.ListFilter{MatchID: matchID, PlayerID: playerID})
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerStatsDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, playerStatsToDTO(s))
	}

	filters := map[string]any{"match_id": nil, "player_id": nil}
	if matchID > 0 {
		filters["match_id"] = matchID
	}
	if playerID > 0 {
		filters["player_id"] = playerID
	}
	writeSuccessWithMeta(ctx, w, http.StatusOK, items, map[string]any{
		"count":   len(items),
		"filters": filters,
	})
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayerStats")
	defer span.End()

	statsID, err := pathID(r, "statsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statsService.Get(ctx, statsID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "stats_id", statsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(item))
}

func (h *Handler) UpdatePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayerStats")
	defer span.End()

	statsID, err := pathID(r, "statsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerStatsUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statsService.Update(ctx, statsID, playerstats.Patch{
		Points:  req.Points,
		Assists: req.Assists,
		Errors:  req.Errors,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player stats failed", "stats_id", statsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(item))
}

func (h *Handler) DeletePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeletePlayerStats")
	defer span.End()

	statsID, err := pathID(r, "statsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.statsService.Delete(ctx, statsID); err != nil {
		h.logger.WarnContext(ctx, "delete player stats failed", "stats_id", statsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
