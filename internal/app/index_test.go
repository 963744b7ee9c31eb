package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestIndex_SingleFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	ix := newIndex("test", time.Hour, func(ctx context.Context) ([]int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []int{1, 2, 3}, nil
	})

	const n = 16
	var wg sync.WaitGroup
	results := make([][]int, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = ix.records(context.Background())
		}(i)
	}

	// let callers pile up on the shared load before releasing it
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 load, got %d", got)
	}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if len(results[i]) != 3 {
			t.Fatalf("caller %d got %v", i, results[i])
		}
	}
}

func TestIndex_TTLExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	calls := 0
	ix := newIndex("test", time.Hour, func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	})
	ix.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if _, err := ix.records(context.Background()); err != nil {
			t.Fatalf("err: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("fresh entry must not reload, calls=%d", calls)
	}

	// clock alone moves Fresh to Stale
	now = now.Add(time.Hour + time.Second)
	if _, err := ix.records(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if calls != 2 {
		t.Fatalf("stale entry must reload, calls=%d", calls)
	}
}

func TestIndex_FailureCachesNothing(t *testing.T) {
	calls := 0
	fail := true
	ix := newIndex("test", time.Hour, func(ctx context.Context) ([]string, error) {
		calls++
		if fail {
			return nil, errors.New("boom")
		}
		return []string{"a"}, nil
	})

	if _, err := ix.records(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	// next call retries instead of serving a failed entry
	fail = false
	recs, err := ix.records(context.Background())
	if err != nil || len(recs) != 1 {
		t.Fatalf("retry failed: %v %v", recs, err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 loads, got %d", calls)
	}
}
