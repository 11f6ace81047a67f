package mcpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-analytics/internal/interfaces/present"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

func newTestTools(t *testing.T) *tools {
	t.Helper()

	store, err := memory.NewStore(memory.DefaultSnapshot())
	require.NoError(t, err)

	service := usecase.NewAnalyticsService(
		memory.NewTeamRepository(store),
		memory.NewMatchRepository(store),
		memory.NewPlayerRepository(store),
		memory.NewPlayerStatsRepository(store),
		usecase.DefaultAnalyticsPolicy(),
		logging.NewNop(),
	)
	return &tools{analytics: service, logger: logging.NewNop()}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestTools_TeamForm(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.teamForm(context.Background(), nil, TeamFormArgs{TeamID: 1, LastN: 5})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out present.TeamForm
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	assert.Equal(t, int64(1), out.TeamID)
	assert.Equal(t, 3, out.Played)
	assert.Equal(t, 1, out.Wins)
	assert.Equal(t, 1, out.Losses)
	assert.Equal(t, 1, out.Draws)
	assert.Equal(t, []string{"L", "D", "W"}, out.RecentResults)
}

func TestTools_TeamForm_DefaultWindow(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.teamForm(context.Background(), nil, TeamFormArgs{TeamID: 2})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out present.TeamForm
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	assert.Equal(t, usecase.DefaultAnalyticsPolicy().DefaultLastN, out.LastN)
}

func TestTools_TeamForm_UnknownTeamIsToolError(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.teamForm(context.Background(), nil, TeamFormArgs{TeamID: 99})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not found")
}

func TestTools_LeagueTable(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.leagueTable(context.Background(), nil, LeagueTableArgs{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out present.LeagueTable
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	require.Len(t, out.Rows, 4)
	assert.Equal(t, int64(2), out.Rows[0].TeamID)
	assert.Equal(t, 1, out.Rows[0].Position)
	assert.Equal(t, int64(4), out.Rows[3].TeamID)
	assert.Zero(t, out.ExcludedMatches)
}

func TestTools_PlayerTrend(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.playerTrend(context.Background(), nil, PlayerTrendArgs{PlayerID: 1})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out present.PlayerTrend
	require.NoError(t, sonic.UnmarshalString(resultText(t, res), &out))
	assert.Equal(t, int64(1), out.PlayerID)
	assert.Equal(t, 3, out.MatchesPlayed)
	require.NotNil(t, out.BestMatchID)
	assert.Equal(t, int64(1), *out.BestMatchID)
	assert.Equal(t, -2.5, out.Slope)
	assert.Equal(t, "declining", out.Trend)
}

func TestTools_PlayerTrend_InvalidID(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.playerTrend(context.Background(), nil, PlayerTrendArgs{PlayerID: 0})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandler_RejectsGet(t *testing.T) {
	tl := newTestTools(t)
	handler := Handler(NewServer(tl.analytics, "test", logging.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestServer_ListToolsDescribesLeagueOrdering(t *testing.T) {
	ctx := context.Background()
	tl := newTestTools(t)
	server := NewServer(tl.analytics, "test", logging.NewNop())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)

	descriptions := make(map[string]string, len(res.Tools))
	for _, tool := range res.Tools {
		descriptions[tool.Name] = tool.Description
	}
	require.Contains(t, descriptions, "league_table")
	assert.Equal(t, leagueTableDescription, descriptions["league_table"])
	assert.Contains(t, descriptions["league_table"], "team name (case-insensitive), then team id")
	assert.NotContains(t, descriptions["league_table"], "wins")
	assert.Contains(t, descriptions, "team_form")
	assert.Contains(t, descriptions, "player_trend")
}
