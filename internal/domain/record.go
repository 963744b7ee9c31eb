package domain

// AccommodationSource identifies which public registry dataset a record
// came from. Closed set; normalizers switch exhaustively on it.
type AccommodationSource string

const (
	SourceHotel          AccommodationSource = "hotel"
	SourceExtrahotel     AccommodationSource = "extrahotel"
	SourceVacationRental AccommodationSource = "vacation_rental"
)

// Island is the closed two-value service area of the deployment.
type Island string

const (
	IslandLanzarote     Island = "lanzarote"
	IslandFuerteventura Island = "fuerteventura"
)

// Minimum query lengths before an index will scan at all.
const (
	MinAccommodationQueryLen = 2
	MinAirportQueryLen       = 1
)

// AccommodationSuggestion is the public read model returned to
// autocomplete callers. Ids are stable only within one load cycle of the
// underlying dataset, not across reloads.
type AccommodationSuggestion struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	PostalCode   string              `json:"postalCode"`
	Municipality string              `json:"municipality"`
	Locality     string              `json:"locality"`
	Island       string              `json:"island"`
	Province     string              `json:"province"`
	Country      string              `json:"country"`
	Source       AccommodationSource `json:"source"`
}

// AirportSuggestion is the public read model for airport autocomplete.
type AirportSuggestion struct {
	ID           string `json:"id"`
	Ident        string `json:"ident"`
	IATACode     string `json:"iataCode"`
	Name         string `json:"name"`
	Municipality string `json:"municipality"`
	Island       Island `json:"island"`
	Country      string `json:"country"`
	ISOCountry   string `json:"isoCountry"`
	ISORegion    string `json:"isoRegion"`
}
