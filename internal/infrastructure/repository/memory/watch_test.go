package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

func teamsSeed(n int) []byte {
	var b strings.Builder
	b.WriteString("teams:\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "  - {id: %d, name: Team %d}\n", i, i)
	}
	return []byte(b.String())
}

// startSeedWatcher returns once the directory watch is registered.
func startSeedWatcher(t *testing.T, path string, store *Store) {
	t.Helper()

	w, err := newSeedWatcher(path, store, logging.NewNop())
	require.NoError(t, err)
	w.delay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
}

func waitForTeams(t *testing.T, store *Store, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(store.Snapshot().Teams) == want
	}, 2*time.Second, 10*time.Millisecond, "want %d teams", want)
}

func TestWatchSeed_InPlaceWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, teamsSeed(2), 0o600))
	store := newSeededStore(t)
	startSeedWatcher(t, path, store)

	require.NoError(t, os.WriteFile(path, teamsSeed(3), 0o600))
	waitForTeams(t, store, 3)
}

func TestWatchSeed_RenameOverSurvivesRepeatedSaves(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, teamsSeed(2), 0o600))
	store := newSeededStore(t)
	startSeedWatcher(t, path, store)

	for _, n := range []int{3, 5} {
		tmp := filepath.Join(dir, fmt.Sprintf(".seed.yaml.%d.tmp", n))
		require.NoError(t, os.WriteFile(tmp, teamsSeed(n), 0o600))
		require.NoError(t, os.Rename(tmp, path))
		waitForTeams(t, store, n)
	}
}

func TestWatchSeed_InvalidFileKeepsLastGoodData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, teamsSeed(2), 0o600))
	store := newSeededStore(t)
	startSeedWatcher(t, path, store)

	require.NoError(t, os.WriteFile(path, teamsSeed(3), 0o600))
	waitForTeams(t, store, 3)

	require.NoError(t, os.WriteFile(path, []byte("teams: [oops"), 0o600))
	// an unrelated file in the same directory is ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), teamsSeed(1), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, store.Snapshot().Teams, 3)

	require.NoError(t, os.WriteFile(path, teamsSeed(4), 0o600))
	waitForTeams(t, store, 4)
}

func TestNewSeedWatcher_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "seed.yaml")
	_, err := newSeedWatcher(path, newSeededStore(t), logging.NewNop())
	require.Error(t, err)
}
