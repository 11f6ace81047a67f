package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

func TestOpenStorage_MemoryDefaultSeed(t *testing.T) {
	storage, err := OpenStorage(context.Background(), config.Config{StorageDriver: config.StorageMemory}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	teams, err := storage.Teams.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 4)
}

func TestOpenStorage_MemorySeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`teams:
  - id: 1
    name: North
  - id: 2
    name: South
matches:
  - id: 1
    home_team_id: 1
    away_team_id: 2
    home_score: 1
    away_score: 0
    match_date: "2025-01-01"
`), 0o600))

	storage, err := OpenStorage(context.Background(), config.Config{StorageDriver: config.StorageMemory, SeedFile: path}, logging.NewNop())
	require.NoError(t, err)

	matches, err := storage.Matches.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].HomeScore)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), config.Config{StorageDriver: "mongo"}, logging.NewNop())
	assert.Error(t, err)
}

func TestNewHTTPServer_Memory(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CORSAllowedOrigins: []string{"*"},
		MCPEnabled:         true,
		FormDefaultLastN:   5,
		FormMaxLastN:       50,
		TrendThreshold:     0.1,
		TrendWorkers:       2,
	}

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, srv.Handler)
	assert.NoError(t, cleanup())
}
