package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"canary_rental/internal/adapters/observability"
)

// cacheTTL bounds dataset staleness against the cost of re-downloading
// multi-megabyte CSV files.
const cacheTTL = 12 * time.Hour

// loadTimeout caps one full load cycle across all sources.
const loadTimeout = 2 * time.Minute

type cacheEntry[R any] struct {
	expiresAt time.Time
	records   []R
}

// index is an in-process TTL cache over an immutable record slice.
// The entry and the in-flight load are the only shared mutable state;
// the entry is replaced wholesale, never mutated in place, so a
// concurrent reader can never observe a half-updated snapshot.
type index[R any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time
	load func(ctx context.Context) ([]R, error)

	mu    sync.RWMutex
	entry *cacheEntry[R]
	sf    singleflight.Group
}

func newIndex[R any](name string, ttl time.Duration, load func(ctx context.Context) ([]R, error)) *index[R] {
	return &index[R]{name: name, ttl: ttl, now: time.Now, load: load}
}

// records returns the cached slice when it is still fresh, otherwise it
// performs a load shared by every concurrent caller. Nothing is cached on
// failure; the next call simply retries. Callers must not mutate the
// returned slice.
func (ix *index[R]) records(ctx context.Context) ([]R, error) {
	ix.mu.RLock()
	e := ix.entry
	ix.mu.RUnlock()
	if e != nil && e.expiresAt.After(ix.now()) {
		observability.ObserveIndex(ix.name, "hit")
		return e.records, nil
	}
	observability.ObserveIndex(ix.name, "miss")

	v, err, _ := ix.sf.Do("load", func() (any, error) {
		// A caller that stops waiting must not cancel the download for
		// everyone who joined it; the load gets its own deadline.
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		recs, err := ix.load(lctx)
		if err != nil {
			observability.ObserveIndex(ix.name, "error")
			return nil, err
		}

		ix.mu.Lock()
		ix.entry = &cacheEntry[R]{expiresAt: ix.now().Add(ix.ttl), records: recs}
		ix.mu.Unlock()
		observability.ObserveIndex(ix.name, "refresh")
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]R), nil
}
