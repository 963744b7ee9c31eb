package shared

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default dataset endpoints. These are the public resources the indexes
// are built from; each is overridable per environment.
const (
	DefaultHotelsCSVURL          = "https://datos.canarias.es/catalogos/general/dataset/429db33d-cbce-4920-b1b6-b4dde9e5f90f/resource/87741d75-2ce2-4a45-8131-ad8263257664/download/establecimientos-hoteleros-inscritos-en-el-registro-general-turistico-de-canarias.csv"
	DefaultExtrahotelCSVURL      = "https://datos.canarias.es/catalogos/general/dataset/1364104c-b86c-4ab9-8ef5-12fdf399aa01/resource/d98c2617-db26-4d15-8ee4-3b2da1130bd0/download/establecimientos-extrahoteleros-sin-viviendas-vacacionales-inscritos-en-el-registro-general-turi.csv"
	DefaultVacationRentalsCSVURL = "https://datos.canarias.es/catalogos/general/dataset/9f4355a2-d086-4384-ba72-d8c99aa2d544/resource/8ff8cc43-c00b-4513-8f42-a5b961c579e1/download/establecimientos-extrahoteleros-de-tipologia-vivienda-vacacional-inscritos-en-el-registro-genera.csv"
	DefaultAirportsCSVURL        = "https://ourairports.com/data/airports.csv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	HotelsCSVURL          string
	ExtrahotelCSVURL      string
	VacationRentalsCSVURL string
	AirportsCSVURL        string

	FetchRPS     int
	FetchTimeout time.Duration
	WarmWorkers  int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		HotelsCSVURL:          DatasetURL("CANARIAS_HOTELS_CSV_URL", DefaultHotelsCSVURL),
		ExtrahotelCSVURL:      DatasetURL("CANARIAS_EXTRAHOTEL_CSV_URL", DefaultExtrahotelCSVURL),
		VacationRentalsCSVURL: DatasetURL("CANARIAS_VV_CSV_URL", DefaultVacationRentalsCSVURL),
		AirportsCSVURL:        DatasetURL("OURAIRPORTS_CSV_URL", DefaultAirportsCSVURL),

		FetchRPS:     atoi("FETCH_RPS", 2),
		FetchTimeout: time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 60)) * time.Second,
		WarmWorkers:  atoi("WARM_WORKERS", 2),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// DatasetURL resolves a dataset endpoint override. A blank or
// whitespace-only value means "unset" and falls back to the default.
func DatasetURL(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
