// Command warm forces both search indexes to load once so the first user
// query after a deploy does not pay the multi-megabyte CSV downloads.
package main

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"canary_rental/internal/adapters/observability"
	"canary_rental/internal/adapters/opendata"
	"canary_rental/internal/app"
	"canary_rental/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.WarmWorkers).Msg("index warm-up starting")

	client := opendata.New(cfg.FetchRPS, cfg.FetchTimeout)
	svc := app.NewService(client, app.SourceURLs{
		Hotels:          cfg.HotelsCSVURL,
		Extrahotel:      cfg.ExtrahotelCSVURL,
		VacationRentals: cfg.VacationRentalsCSVURL,
		Airports:        cfg.AirportsCSVURL,
	})

	warmers := []struct {
		name string
		warm func(context.Context) (int, error)
	}{
		{"accommodations", svc.WarmAccommodations},
		{"airports", svc.WarmAirports},
	}

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup
	var failed atomic.Bool

	for _, w := range warmers {
		w := w

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			n, err := w.warm(ctx)
			if err != nil {
				failed.Store(true)
				log.Warn().Str("index", w.name).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("index", w.name).Int("records", n).Msg("warm ok")
		}()
	}

	wg.Wait()
	if failed.Load() {
		log.Error().Msg("warm-up completed with failures")
		os.Exit(1)
	}
	log.Info().Msg("warm-up completed")
}
