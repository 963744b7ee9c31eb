package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"canary_rental/internal/domain"
)

const (
	airportDefaultLimit = 10
	airportMaxLimit     = 20
)

// The served airports form a closed two-airport universe by design.
var (
	allowedIATA = map[string]bool{"ACE": true, "FUE": true}
	allowedICAO = map[string]bool{"GCRR": true, "GCFV": true}
)

var airportParams = searchParams{
	minQueryLen:  domain.MinAirportQueryLen,
	defaultLimit: airportDefaultLimit,
	maxLimit:     airportMaxLimit,
	collation:    language.English,
}

type airportRecord struct {
	domain.AirportSuggestion
	normName    string
	searchIndex string
}

func (r airportRecord) searchText() string  { return r.searchIndex }
func (r airportRecord) displayName() string { return r.Name }

// resolveIsland pins a row to one of the two served islands, by code
// first and by name/municipality substring as a fallback.
func resolveIsland(row map[string]string) (domain.Island, bool) {
	name := normalizeForSearch(row["name"])
	municipality := normalizeForSearch(row["municipality"])
	ident := strings.ToUpper(cleanCell(row["ident"]))
	iata := strings.ToUpper(cleanCell(row["iata_code"]))

	switch {
	case iata == "ACE" || ident == "GCRR" ||
		strings.Contains(name, "lanzarote") || strings.Contains(municipality, "lanzarote"):
		return domain.IslandLanzarote, true
	case iata == "FUE" || ident == "GCFV" ||
		strings.Contains(name, "fuerteventura") || strings.Contains(municipality, "fuerteventura"):
		return domain.IslandFuerteventura, true
	}
	return "", false
}

// toAirportRecord keeps only Canary airports with scheduled service that
// sit on the IATA/ICAO allow-list.
func toAirportRecord(row map[string]string, rowIndex int) (airportRecord, bool) {
	isoCountry := strings.ToUpper(cleanCell(row["iso_country"]))
	isoRegion := strings.ToUpper(cleanCell(row["iso_region"]))
	scheduled := normalizeForSearch(row["scheduled_service"])
	iata := strings.ToUpper(cleanCell(row["iata_code"]))
	ident := strings.ToUpper(cleanCell(row["ident"]))

	if isoCountry != "ES" || isoRegion != "ES-CN" {
		return airportRecord{}, false
	}
	if scheduled != "yes" {
		return airportRecord{}, false
	}
	if !allowedIATA[iata] && !allowedICAO[ident] {
		return airportRecord{}, false
	}
	island, ok := resolveIsland(row)
	if !ok {
		return airportRecord{}, false
	}
	name := cleanCell(row["name"])
	if name == "" {
		return airportRecord{}, false
	}

	municipality := cleanCell(row["municipality"])
	id := cleanCell(row["id"])
	if id == "" {
		id = fmt.Sprintf("airport-%d", rowIndex)
	}

	return airportRecord{
		AirportSuggestion: domain.AirportSuggestion{
			ID:           id,
			Ident:        ident,
			IATACode:     iata,
			Name:         name,
			Municipality: municipality,
			Island:       island,
			Country:      "Spain",
			ISOCountry:   isoCountry,
			ISORegion:    isoRegion,
		},
		normName:    normalizeForSearch(name),
		searchIndex: normalizeForSearch(strings.Join([]string{name, municipality, iata, ident}, " ")),
	}, true
}

func airportSources(urls SourceURLs) []datasetSource[airportRecord] {
	return []datasetSource[airportRecord]{{
		label:    "airports",
		url:      urls.Airports,
		delim:    ',',
		toRecord: toAirportRecord,
	}}
}

func mergeAirports(results [][]airportRecord) []airportRecord {
	var merged []airportRecord
	for _, recs := range results {
		merged = append(merged, recs...)
	}
	return merged
}

// Exact IATA/ICAO code matches dominate everything else.
func scoreAirport(r airportRecord, query string) int {
	score := 0
	if strings.HasPrefix(r.normName, query) {
		score += 50
	}
	if strings.HasPrefix(r.searchIndex, query) {
		score += 30
	}
	if strings.Contains(r.searchIndex, query) {
		score += 20
	}
	if strings.ToLower(r.IATACode) == query {
		score += 70
	}
	if strings.ToLower(r.Ident) == query {
		score += 65
	}
	return score
}
