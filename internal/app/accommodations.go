package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"canary_rental/internal/domain"
)

const (
	accommodationDefaultLimit = 12
	accommodationMaxLimit     = 25
)

// allowedIslands scopes the accommodation index to the deployment's
// service area; records anywhere else are discarded during the merge.
var allowedIslands = map[string]bool{
	"fuerteventura": true,
	"lanzarote":     true,
}

var accommodationParams = searchParams{
	minQueryLen:  domain.MinAccommodationQueryLen,
	defaultLimit: accommodationDefaultLimit,
	maxLimit:     accommodationMaxLimit,
	collation:    language.Spanish,
}

// accommodationRecord is the cached shape: the public suggestion plus the
// precomputed normalized strings that never leave this package.
type accommodationRecord struct {
	domain.AccommodationSuggestion
	normName     string
	normAddress  string
	normLocation string
	searchIndex  string
}

func (r accommodationRecord) searchText() string  { return r.searchIndex }
func (r accommodationRecord) displayName() string { return r.Name }

// dedupeKey is the normalized (name, address, postal code, municipality)
// tuple; the first record per key in source-list order wins.
func (r accommodationRecord) dedupeKey() string {
	return normalizeForSearch(strings.Join([]string{r.Name, r.Address, r.PostalCode, r.Municipality}, "|"))
}

// toAccommodationRecord maps one raw registry row into a record, or drops
// it when both name and address are empty. The id falls back to
// "{source}-{rowIndex}", so ids are only stable within one load cycle.
func toAccommodationRecord(row map[string]string, source domain.AccommodationSource, rowIndex int) (accommodationRecord, bool) {
	name := cleanValue(row["establecimiento_nombre_comercial"])
	address := cleanValue(row["direccion"])
	if name == "" && address == "" {
		return accommodationRecord{}, false
	}

	id := cleanValue(row["establecimiento_id"])
	if id == "" {
		id = fmt.Sprintf("%s-%d", source, rowIndex)
	}
	postalCode := cleanValue(row["direccion_codigo_postal"])
	municipality := cleanValue(row["direccion_municipio_nombre"])
	if municipality == "" {
		// the portal shipped this header misspelled for a while
		municipality = cleanValue(row["direcion_municipio_nombre"])
	}
	locality := cleanValue(row["direccion_localidad_nombre"])
	island := cleanValue(row["direccion_isla_nombre"])
	province := cleanValue(row["direccion_provincia_nombre"])

	display := name
	if display == "" {
		display = address
	}

	return accommodationRecord{
		AccommodationSuggestion: domain.AccommodationSuggestion{
			ID:           id,
			Name:         display,
			Address:      address,
			PostalCode:   postalCode,
			Municipality: municipality,
			Locality:     locality,
			Island:       island,
			Province:     province,
			Country:      "Spain",
			Source:       source,
		},
		normName:    normalizeForSearch(name),
		normAddress: normalizeForSearch(address),
		normLocation: normalizeForSearch(
			strings.Join([]string{municipality, locality, island, province, postalCode}, " ")),
		searchIndex: normalizeForSearch(
			strings.Join([]string{name, address, municipality, locality, island, province, postalCode}, " ")),
	}, true
}

func accommodationSources(urls SourceURLs) []datasetSource[accommodationRecord] {
	mk := func(source domain.AccommodationSource, url string) datasetSource[accommodationRecord] {
		return datasetSource[accommodationRecord]{
			label: string(source),
			url:   url,
			delim: ';',
			toRecord: func(row map[string]string, rowIndex int) (accommodationRecord, bool) {
				return toAccommodationRecord(row, source, rowIndex)
			},
		}
	}
	return []datasetSource[accommodationRecord]{
		mk(domain.SourceHotel, urls.Hotels),
		mk(domain.SourceExtrahotel, urls.Extrahotel),
		mk(domain.SourceVacationRental, urls.VacationRentals),
	}
}

// mergeAccommodations walks per-source results in source-list order,
// keeps records on the allowed islands and drops later duplicates.
func mergeAccommodations(results [][]accommodationRecord) []accommodationRecord {
	seen := make(map[string]struct{})
	var merged []accommodationRecord
	for _, recs := range results {
		for _, rec := range recs {
			if !allowedIslands[normalizeForSearch(rec.Island)] {
				continue
			}
			key := rec.dedupeKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, rec)
		}
	}
	return merged
}

// Prefix matches on a field outweigh substring matches; the name carries
// more weight than the address, which outweighs the location fields.
func scoreAccommodation(r accommodationRecord, query string) int {
	score := 0
	if strings.HasPrefix(r.normName, query) {
		score += 60
	}
	if strings.HasPrefix(r.normAddress, query) {
		score += 40
	}
	if strings.HasPrefix(r.normLocation, query) {
		score += 20
	}
	if strings.Contains(r.normName, query) {
		score += 24
	}
	if strings.Contains(r.normAddress, query) {
		score += 16
	}
	if strings.Contains(r.normLocation, query) {
		score += 8
	}
	return score
}
