package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntriesAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	for _, key := range []string{"team:id:1", "team:all", "match:all", "player:id:1"} {
		store.Set(ctx, key, key)
	}

	store.DeletePrefix(ctx, "team:", "match:", "")

	if store.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "player:id:1"); !ok {
		t.Fatalf("expected player entry to survive")
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	got, err := Load(ctx, store, "ids", func(context.Context) ([]int64, error) {
		return []int64{1, 2}, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected value: %v", got)
	}

	if _, err := Load(ctx, store, "ids", func(context.Context) (string, error) {
		return "", nil
	}); err == nil {
		t.Fatalf("expected type mismatch error")
	}

	loadErr := errors.New("boom")
	if _, err := Load(ctx, store, "fails", func(context.Context) (int, error) {
		return 0, loadErr
	}); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "fails"); ok {
		t.Fatalf("errors must not be cached")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestNilStoreBypassesCache(t *testing.T) {
	var s *Store
	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, err := Load(context.Background(), s, "k", loader)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, err := Load(context.Background(), s, "k", loader)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("expected loader to run on every call, got %d then %d", first, second)
	}
	s.DeletePrefix(context.Background(), "k")
}
