// Package mcpapi exposes the analytics use cases as Model Context Protocol
// tools over streamable HTTP.
package mcpapi

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/sports-analytics/internal/interfaces/present"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

const serverName = "sports-analytics-mcp"

const leagueTableDescription = "League standings ranked by points, then points difference, then points for, " +
	"then team name (case-insensitive), then team id. Matches referencing unknown teams are skipped and counted"

type TeamFormArgs struct {
	TeamID int64 `json:"team_id" jsonschema:"id of the team"`
	LastN  int   `json:"last_n,omitempty" jsonschema:"number of most recent matches, defaults to the configured window"`
}

type LeagueTableArgs struct{}

type PlayerTrendArgs struct {
	PlayerID int64 `json:"player_id" jsonschema:"id of the player"`
}

type tools struct {
	analytics *usecase.AnalyticsService
	logger    *logging.Logger
}

// NewServer registers the analytics tools on a fresh MCP server.
func NewServer(analyticsService *usecase.AnalyticsService, version string, logger *logging.Logger) *mcp.Server {
	if logger == nil {
		logger = logging.Default()
	}
	if version == "" {
		version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	t := &tools{analytics: analyticsService, logger: logger.Named("mcp")}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_form",
		Description: "Wins, losses, draws, points and recent results of a team over its last N matches",
	}, t.teamForm)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "league_table",
		Description: leagueTableDescription,
	}, t.leagueTable)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_trend",
		Description: "Per-match averages, best match and performance trend of a player",
	}, t.playerTrend)

	return server
}

// Handler serves the server over streamable HTTP with plain JSON responses.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func (t *tools) teamForm(ctx context.Context, _ *mcp.CallToolRequest, args TeamFormArgs) (*mcp.CallToolResult, any, error) {
	form, err := t.analytics.TeamForm(ctx, args.TeamID, args.LastN)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp team_form failed", "team_id", args.TeamID, "last_n", args.LastN, "error", err)
		return toolError(err), nil, nil
	}
	return toolJSON(present.FromTeamForm(form))
}

func (t *tools) leagueTable(ctx context.Context, _ *mcp.CallToolRequest, _ LeagueTableArgs) (*mcp.CallToolResult, any, error) {
	table, err := t.analytics.LeagueTable(ctx)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp league_table failed", "error", err)
		return toolError(err), nil, nil
	}
	return toolJSON(present.FromLeagueTable(table))
}

func (t *tools) playerTrend(ctx context.Context, _ *mcp.CallToolRequest, args PlayerTrendArgs) (*mcp.CallToolResult, any, error) {
	trend, err := t.analytics.PlayerTrend(ctx, args.PlayerID)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp player_trend failed", "player_id", args.PlayerID, "error", err)
		return toolError(err), nil, nil
	}
	return toolJSON(present.FromPlayerTrend(trend))
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	raw, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "error: " + err.Error()},
		},
	}
}
