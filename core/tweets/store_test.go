package tweets

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tweets-app-api/core/domain"
)

func TestStore_MissComputesAndStores(t *testing.T) {
	cache := newMemoryCacheMap()
	store := NewStore(cache)

	want := []domain.Tweet{{ID: "1", Text: "hello", CreatedAt: day(1)}}
	computed := 0

	got, err := store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, func() ([]domain.Tweet, error) {
		computed++
		return want, nil
	})

	if err != nil {
		t.Fatalf("GetOrCompute returned error: %v", err)
	}
	if computed != 1 {
		t.Errorf("compute invoked %d times, want 1", computed)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("GetOrCompute = %+v, want the computed set", got)
	}
	if _, ok := cache.entries["tweets:jack"]; !ok {
		t.Error("computed set was not stored in the cache")
	}
}

func TestStore_HitSkipsCompute(t *testing.T) {
	cache := newMemoryCacheMap()
	store := NewStore(cache)

	computed := 0
	compute := func() ([]domain.Tweet, error) {
		computed++
		return []domain.Tweet{{ID: "1"}}, nil
	}

	// Two consecutive calls within the TTL window: one compute only
	for i := 0; i < 2; i++ {
		if _, err := store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, compute); err != nil {
			t.Fatalf("GetOrCompute returned error: %v", err)
		}
	}

	if computed != 1 {
		t.Errorf("compute invoked %d times, want 1", computed)
	}
}

func TestStore_FailedComputeLeavesNoEntry(t *testing.T) {
	cache := newMemoryCacheMap()
	store := NewStore(cache)

	wantErr := errors.New("upstream exploded")

	_, err := store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, func() ([]domain.Tweet, error) {
		return nil, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrCompute error = %v, want %v", err, wantErr)
	}
	if len(cache.entries) != 0 {
		t.Error("failed compute must not write a cache entry")
	}

	// The next call retries the compute rather than serving a negative entry
	computed := 0
	_, err = store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, func() ([]domain.Tweet, error) {
		computed++
		return []domain.Tweet{{ID: "1"}}, nil
	})
	if err != nil || computed != 1 {
		t.Errorf("retry after failure: err=%v computed=%d, want nil/1", err, computed)
	}
}

func TestStore_SingleFlightCoalescesConcurrentCallers(t *testing.T) {
	cache := newMemoryCacheMap()
	store := NewStore(cache)

	var computes int32
	gate := make(chan struct{})

	compute := func() ([]domain.Tweet, error) {
		atomic.AddInt32(&computes, 1)
		<-gate // hold the flight open until all callers have queued up
		return []domain.Tweet{{ID: "shared"}}, nil
	}

	const callers = 16
	results := make([][]domain.Tweet, callers)
	errs := make([]error, callers)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)

	for i := 0; i < callers; i++ {
		go func(idx int) {
			defer done.Done()
			started.Done()
			results[idx], errs[idx] = store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, compute)
		}(i)
	}

	started.Wait()
	time.Sleep(50 * time.Millisecond) // let every caller reach the group
	close(gate)
	done.Wait()

	if got := atomic.LoadInt32(&computes); got != 1 {
		t.Errorf("compute invoked %d times under concurrency, want 1", got)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d got error: %v", i, errs[i])
		}
		if len(results[i]) != 1 || results[i][0].ID != "shared" {
			t.Errorf("caller %d observed %+v, want the shared set", i, results[i])
		}
	}
}

func TestStore_DifferentKeysComputeIndependently(t *testing.T) {
	cache := newMemoryCacheMap()
	store := NewStore(cache)

	var computes int32
	compute := func() ([]domain.Tweet, error) {
		atomic.AddInt32(&computes, 1)
		return []domain.Tweet{{ID: "x"}}, nil
	}

	var wg sync.WaitGroup
	for _, key := range []string{"tweets:jack", "tweets:jill"} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if _, err := store.GetOrCompute(context.Background(), k, time.Minute, compute); err != nil {
				t.Errorf("GetOrCompute(%s) error: %v", k, err)
			}
		}(key)
	}
	wg.Wait()

	if got := atomic.LoadInt32(&computes); got != 2 {
		t.Errorf("compute invoked %d times for two keys, want 2", got)
	}
}

func TestStore_UndecodableEntryIsAMiss(t *testing.T) {
	cache := newMemoryCacheMap()
	cache.entries["tweets:jack"] = []byte("{not json")
	store := NewStore(cache)

	computed := 0
	got, err := store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, func() ([]domain.Tweet, error) {
		computed++
		return []domain.Tweet{{ID: "fresh"}}, nil
	})

	if err != nil {
		t.Fatalf("GetOrCompute returned error: %v", err)
	}
	if computed != 1 {
		t.Errorf("compute invoked %d times, want 1", computed)
	}
	if got[0].ID != "fresh" {
		t.Errorf("GetOrCompute = %+v, want recomputed set", got)
	}
}

func TestStore_CacheWriteFailureStillReturnsResult(t *testing.T) {
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errCacheMiss
		},
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			return errors.New("cache backend down")
		},
	}
	store := NewStore(cache)

	got, err := store.GetOrCompute(context.Background(), "tweets:jack", time.Minute, func() ([]domain.Tweet, error) {
		return []domain.Tweet{{ID: "1"}}, nil
	})

	if err != nil {
		t.Fatalf("GetOrCompute returned error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("GetOrCompute = %+v, want computed set despite cache write failure", got)
	}
}
