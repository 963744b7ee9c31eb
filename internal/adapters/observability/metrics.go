package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rental", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rental", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	FetchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rental", Name: "dataset_fetch_total", Help: "Outbound dataset downloads."},
		[]string{"host", "status"},
	)
	FetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rental", Name: "dataset_fetch_duration_seconds",
			Help:    "Outbound dataset download duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"host"},
	)
	IndexEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rental", Name: "index_events_total", Help: "Search index cache events."},
		[]string{"index", "event"}, // event: hit|miss|refresh|error
	)
	DatasetRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "rental", Name: "dataset_records", Help: "Records surviving normalization per dataset."},
		[]string{"dataset"},
	)
)

// Serve starts a standalone metrics listener when addr is non-empty.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, FetchRequests, FetchLatency, IndexEvents, DatasetRecords)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFetch(host string, status int, dur time.Duration) {
	FetchRequests.WithLabelValues(host, strconv.Itoa(status)).Inc()
	FetchLatency.WithLabelValues(host).Observe(dur.Seconds())
}

func ObserveIndex(index, event string) { // event: hit|miss|refresh|error
	IndexEvents.WithLabelValues(index, event).Inc()
}

func SetDatasetRecords(dataset string, n int) {
	DatasetRecords.WithLabelValues(dataset).Set(float64(n))
}
