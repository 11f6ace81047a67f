package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-analytics/internal/domain/player"
)

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req playerCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := player.Player{Name: req.Name, TeamID: req.TeamID}
	if req.Position != nil {
		input.Position = *req.Position
	}
	item, err := h.playerService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.List(ctx, player.ListFilter{TeamID: teamID}, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	var teamFilter any
	if teamID > 0 {
		teamFilter = teamID
	}
	writeSuccessWithMeta(ctx, w, http.StatusOK, items, listMeta{
		Page:    page.Number,
		Limit:   page.Limit,
		Count:   len(items),
		Filters: map[string]any{"team_id": teamFilter},
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, playerID, player.Patch{
		Name:     req.Name,
		Position: req.Position,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
