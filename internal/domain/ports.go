package domain

import "context"

// DatasetFetcher downloads one remote dataset as raw text.
type DatasetFetcher interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

// AccommodationSearcher answers free-text accommodation autocomplete.
// A non-positive limit means "use the index default"; results are always
// a well-formed (possibly empty) slice unless every dataset source failed.
type AccommodationSearcher interface {
	SearchAccommodations(ctx context.Context, query string, limit int) ([]AccommodationSuggestion, error)
}

// AirportSearcher answers free-text airport autocomplete.
type AirportSearcher interface {
	SearchAirports(ctx context.Context, query string, limit int) ([]AirportSuggestion, error)
}
