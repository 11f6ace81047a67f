package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /openapi.json", handler.OpenAPIJSON)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)

	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("POST /v1/stats", handler.CreatePlayerStats)
	mux.HandleFunc("GET /v1/stats", handler.ListPlayerStats)
	mux.HandleFunc("GET /v1/stats/{statsID}", handler.GetPlayerStats)
	mux.HandleFunc("PUT /v1/stats/{statsID}", handler.UpdatePlayerStats)
	mux.HandleFunc("DELETE /v1/stats/{statsID}", handler.DeletePlayerStats)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/analytics/teams/{teamID}/form", handler.TeamForm)
	mux.HandleFunc("GET /v1/analytics/league/table", handler.LeagueTable)
	mux.HandleFunc("GET /v1/analytics/players/{playerID}/trend", handler.PlayerTrend)
	mux.HandleFunc("GET /v1/analytics/teams/{teamID}/player-trends", handler.TeamPlayerTrends)
}

// The streamable transport uses POST for calls, GET for the event stream and
// DELETE to end a session.
func registerMCPRoutes(mux *http.ServeMux, mcpHandler http.Handler) {
	mux.Handle("/mcp", mcpHandler)
}
