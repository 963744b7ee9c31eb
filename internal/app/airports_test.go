package app_test

import (
	"context"
	"strings"
	"testing"

	"canary_rental/internal/domain"
)

const airportHeader = "id,ident,name,iata_code,municipality,iso_country,iso_region,scheduled_service\n"

func airportRow(id, ident, name, iata, muni, country, region, scheduled string) string {
	if strings.ContainsAny(name, ",\"") {
		name = `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return strings.Join([]string{id, ident, name, iata, muni, country, region, scheduled}, ",") + "\n"
}

func TestSearchAirports_ExactIATAOutranksNameMatch(t *testing.T) {
	f := newFakeFetcher()
	f.bodies[testURLs.Airports] = airportHeader +
		// name deliberately contains "ace" so both records match the query
		airportRow("2", "GCFV", "Fuerteventura Ace Terminal", "FUE", "Puerto del Rosario", "ES", "ES-CN", "yes") +
		airportRow("1", "GCRR", "Lanzarote Airport", "ACE", "San Bartolomé", "ES", "ES-CN", "yes")

	svc := newTestService(f)

	got, err := svc.SearchAirports(context.Background(), "ace", 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both airports, got %+v", got)
	}
	if got[0].IATACode != "ACE" {
		t.Fatalf("exact IATA match must rank first, got %+v", got[0])
	}
}

func TestSearchAirports_Filters(t *testing.T) {
	f := newFakeFetcher()
	f.bodies[testURLs.Airports] = airportHeader +
		airportRow("1", "GCRR", "Lanzarote Airport", "ACE", "San Bartolomé", "ES", "ES-CN", "yes") +
		// outside the closed allow-list even though it is a Canary airport
		airportRow("3", "GCLP", "Gran Canaria Airport", "LPA", "Las Palmas", "ES", "ES-CN", "yes") +
		// no scheduled service
		airportRow("4", "GCFV", "Fuerteventura Airport", "FUE", "Puerto del Rosario", "ES", "ES-CN", "no") +
		// wrong region
		airportRow("5", "LEMD", "Madrid Barajas", "MAD", "Madrid", "ES", "ES-MD", "yes")

	svc := newTestService(f)

	got, err := svc.SearchAirports(context.Background(), "airport", 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only the Lanzarote airport, got %+v", got)
	}
	if got[0].Island != domain.IslandLanzarote {
		t.Fatalf("island not resolved: %+v", got[0])
	}
}

func TestSearchAirports_SingleCharQueryAllowed(t *testing.T) {
	f := newFakeFetcher()
	f.bodies[testURLs.Airports] = airportHeader +
		airportRow("1", "GCRR", "Lanzarote Airport", "ACE", "San Bartolomé", "ES", "ES-CN", "yes")

	svc := newTestService(f)

	got, err := svc.SearchAirports(context.Background(), "l", 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("airport index minimum query length is 1, got %+v", got)
	}
}

func TestSearchAirports_RowIndexIDFallback(t *testing.T) {
	f := newFakeFetcher()
	f.bodies[testURLs.Airports] = airportHeader +
		airportRow("", "GCRR", "Lanzarote Airport", "ACE", "San Bartolomé", "ES", "ES-CN", "yes")

	svc := newTestService(f)

	got, err := svc.SearchAirports(context.Background(), "ace", 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("got %+v, %v", got, err)
	}
	if got[0].ID != "airport-0" {
		t.Fatalf("expected session-scoped fallback id, got %q", got[0].ID)
	}
}

func TestSearchAirports_LimitCeiling(t *testing.T) {
	f := newFakeFetcher()
	f.bodies[testURLs.Airports] = airportHeader +
		airportRow("1", "GCRR", "Lanzarote Airport", "ACE", "San Bartolomé", "ES", "ES-CN", "yes") +
		airportRow("2", "GCFV", "Fuerteventura Airport", "FUE", "Puerto del Rosario", "ES", "ES-CN", "yes")

	svc := newTestService(f)

	got, err := svc.SearchAirports(context.Background(), "airport", 999)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// the universe is tiny; clamping just must not blow up
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
}
