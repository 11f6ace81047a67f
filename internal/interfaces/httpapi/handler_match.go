package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/domain/match"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateMatch")
	defer span.End()

	var req matchCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	matchDate, err := parseDate(req.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, match.Match{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  *req.HomeScore,
		AwayScore:  *req.AwayScore,
		MatchDate:  matchDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed",
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
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
	dateFrom, err := queryDate(r, "date_from")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	dateTo, err := queryDate(r, "date_to")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.ListFilter{TeamID: teamID, DateFrom: dateFrom, DateTo: dateTo}
	matches, err := h.matchService.List(ctx, filter, page)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccessWithMeta(ctx, w, http.StatusOK, items, listMeta{
		Page:    page.Number,
		Limit:   page.Limit,
		Count:   len(items),
		Filters: matchFilters(filter),
	})
}

func matchFilters(filter match.ListFilter) map[string]any {
	out := map[string]any{"team_id": nil, "date_from": nil, "date_to": nil}
	if filter.TeamID > 0 {
		out["team_id"] = filter.TeamID
	}
	if filter.DateFrom != nil {
		out["date_from"] = filter.DateFrom.Format(dateLayout)
	}
	if filter.DateTo != nil {
		out["date_to"] = filter.DateTo.Format(dateLayout)
	}
	return out
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := match.Patch{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
	}
	if req.MatchDate != nil {
		var matchDate time.Time
		if matchDate, err = parseDate(*req.MatchDate); err != nil {
			writeError(ctx, w, err)
			return
		}
		patch.MatchDate = &matchDate
	}

	item, err := h.matchService.Update(ctx, matchID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
