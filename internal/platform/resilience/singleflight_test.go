package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlight_CollapsesConcurrentLoads(t *testing.T) {
	var f Flight[[]int64]
	var loads atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, _, err := f.Do("team:1:matches", func() ([]int64, error) {
				loads.Add(1)
				time.Sleep(20 * time.Millisecond)
				return []int64{1, 4, 5}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, []int64{1, 4, 5}, got)
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	assert.Zero(t, f.InFlight())
}

func TestFlight_PanicBecomesError(t *testing.T) {
	var f Flight[int]

	_, shared, err := f.Do("boom", func() (int, error) {
		panic("loader exploded")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader exploded")
	assert.False(t, shared)
	assert.Zero(t, f.InFlight())

	v, _, err := f.Do("boom", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
