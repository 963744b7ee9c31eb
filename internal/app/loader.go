package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"canary_rental/internal/adapters/observability"
	"canary_rental/internal/csvtext"
	"canary_rental/internal/domain"
)

// ErrAllSourcesFailed reports a load cycle in which no dataset could be
// fetched. Partial failures are tolerated and logged instead.
var ErrAllSourcesFailed = errors.New("all dataset sources failed")

type datasetSource[R any] struct {
	label string
	url   string
	delim byte
	// toRecord maps one header-keyed row into a typed record, or drops it.
	toRecord func(row map[string]string, rowIndex int) (R, bool)
}

// loadSources fetches every source concurrently, parses and normalizes
// each independently, and returns per-source record slices in source-list
// order regardless of completion order. A failed source contributes zero
// records; the returned error is non-nil only when every source failed.
func loadSources[R any](ctx context.Context, f domain.DatasetFetcher, sources []datasetSource[R]) ([][]R, error) {
	results := make([][]R, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src datasetSource[R]) {
			defer wg.Done()
			start := time.Now()

			body, err := f.FetchCSV(ctx, src.url)
			if err != nil {
				errs[i] = err
				return
			}

			var recs []R
			for rowIdx, row := range csvtext.Records(body, src.delim) {
				if r, ok := src.toRecord(row, rowIdx); ok {
					recs = append(recs, r)
				}
			}
			results[i] = recs

			observability.SetDatasetRecords(src.label, len(recs))
			log.Info().
				Str("dataset", src.label).
				Int("records", len(recs)).
				Dur("took", time.Since(start)).
				Msg("dataset loaded")
		}(i, src)
	}
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			log.Warn().Str("dataset", sources[i].label).Err(err).Msg("dataset fetch failed")
		}
	}
	if failed == len(sources) {
		return nil, ErrAllSourcesFailed
	}
	return results, nil
}
