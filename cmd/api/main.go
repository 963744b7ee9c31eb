package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "canary_rental/internal/adapters/http_server"
	"canary_rental/internal/adapters/observability"
	"canary_rental/internal/adapters/opendata"
	"canary_rental/internal/app"
	"canary_rental/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	client := opendata.New(cfg.FetchRPS, cfg.FetchTimeout)
	svc := app.NewService(client, app.SourceURLs{
		Hotels:          cfg.HotelsCSVURL,
		Extrahotel:      cfg.ExtrahotelCSVURL,
		VacationRentals: cfg.VacationRentalsCSVURL,
		Airports:        cfg.AirportsCSVURL,
	})

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Accommodations: svc, Airports: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
