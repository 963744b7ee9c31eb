// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"canary_rental/internal/domain"
)

type Handlers struct {
	Accommodations domain.AccommodationSearcher
	Airports       domain.AirportSearcher
}

// itemsResponse is the one shape autocomplete clients ever see: a list,
// possibly empty, never an error body.
type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/accommodations", h.searchAccommodations)
	s.mux.Get("/v1/airports", h.searchAirports)
}

func queryParams(r *http.Request) (q string, limit int) {
	q = r.URL.Query().Get("q")
	if ls := r.URL.Query().Get("limit"); ls != "" {
		// a malformed limit is not an error; the engine clamps it anyway
		if l, err := strconv.Atoi(ls); err == nil {
			limit = l
		}
	}
	return q, limit
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeItems[T any](w http.ResponseWriter, r *http.Request, status int, items []T) {
	if items == nil {
		items = []T{}
	}
	etag, body := calcETagAndBody(itemsResponse[T]{Items: items})

	// If client already has this version, short-circuit.
	if status == http.StatusOK {
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
			w.Header().Set("ETag", etag) // include ETag on 304
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write items body")
	}
}

func (h *Handlers) searchAccommodations(w http.ResponseWriter, r *http.Request) {
	q, limit := queryParams(r)
	items, err := h.Accommodations.SearchAccommodations(r.Context(), q, limit)
	if err != nil {
		// total loader failure degrades to a well-formed empty payload
		log.Error().Err(err).Msg("accommodation search unavailable")
		writeItems(w, r, http.StatusServiceUnavailable, []domain.AccommodationSuggestion{})
		return
	}
	writeItems(w, r, http.StatusOK, items)
}

func (h *Handlers) searchAirports(w http.ResponseWriter, r *http.Request) {
	q, limit := queryParams(r)
	items, err := h.Airports.SearchAirports(r.Context(), q, limit)
	if err != nil {
		log.Error().Err(err).Msg("airport search unavailable")
		writeItems(w, r, http.StatusServiceUnavailable, []domain.AirportSuggestion{})
		return
	}
	writeItems(w, r, http.StatusOK, items)
}
