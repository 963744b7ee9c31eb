package app

import (
	"context"
	"unicode/utf8"

	"canary_rental/internal/domain"
)

// SourceURLs carries the per-dataset download URLs (see shared.Load).
type SourceURLs struct {
	Hotels          string
	Extrahotel      string
	VacationRentals string
	Airports        string
}

// Service answers autocomplete queries over the two reference-data
// indexes. Each index owns its cache entry and in-flight load
// independently, so a slow airport refresh never blocks accommodation
// queries.
type Service struct {
	acc *index[accommodationRecord]
	air *index[airportRecord]
}

func NewService(f domain.DatasetFetcher, urls SourceURLs) *Service {
	accSources := accommodationSources(urls)
	airSources := airportSources(urls)

	return &Service{
		acc: newIndex("accommodations", cacheTTL, func(ctx context.Context) ([]accommodationRecord, error) {
			results, err := loadSources(ctx, f, accSources)
			if err != nil {
				return nil, err
			}
			return mergeAccommodations(results), nil
		}),
		air: newIndex("airports", cacheTTL, func(ctx context.Context) ([]airportRecord, error) {
			results, err := loadSources(ctx, f, airSources)
			if err != nil {
				return nil, err
			}
			return mergeAirports(results), nil
		}),
	}
}

// SearchAccommodations returns ranked accommodation suggestions. Queries
// under the minimum length return an empty slice without touching the
// cache; the guard exists to block prohibitively broad scans.
func (s *Service) SearchAccommodations(ctx context.Context, query string, limit int) ([]domain.AccommodationSuggestion, error) {
	q := normalizeForSearch(query)
	if utf8.RuneCountInString(q) < accommodationParams.minQueryLen {
		return []domain.AccommodationSuggestion{}, nil
	}

	recs, err := s.acc.records(ctx)
	if err != nil {
		return nil, err
	}

	top := rank(recs, q, accommodationParams.clampLimit(limit), accommodationParams, scoreAccommodation)
	out := make([]domain.AccommodationSuggestion, len(top))
	for i, r := range top {
		out[i] = r.AccommodationSuggestion
	}
	return out, nil
}

// SearchAirports returns ranked airport suggestions.
func (s *Service) SearchAirports(ctx context.Context, query string, limit int) ([]domain.AirportSuggestion, error) {
	q := normalizeForSearch(query)
	if utf8.RuneCountInString(q) < airportParams.minQueryLen {
		return []domain.AirportSuggestion{}, nil
	}

	recs, err := s.air.records(ctx)
	if err != nil {
		return nil, err
	}

	top := rank(recs, q, airportParams.clampLimit(limit), airportParams, scoreAirport)
	out := make([]domain.AirportSuggestion, len(top))
	for i, r := range top {
		out[i] = r.AirportSuggestion
	}
	return out, nil
}

// WarmAccommodations forces a load of the accommodation index and reports
// its record count. Used by cmd/warm at deploy time.
func (s *Service) WarmAccommodations(ctx context.Context) (int, error) {
	recs, err := s.acc.records(ctx)
	return len(recs), err
}

// WarmAirports forces a load of the airport index.
func (s *Service) WarmAirports(ctx context.Context) (int, error) {
	recs, err := s.air.records(ctx)
	return len(recs), err
}
