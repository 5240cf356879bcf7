package domain

// Airport is a lower-case three-letter code of an airport served by the search.
type Airport string

// Served airports.
const (
	AirportSydney     Airport = "syd"
	AirportMelbourne  Airport = "mel"
	AirportLosAngeles Airport = "lax"
	AirportParis      Airport = "cdg"
	AirportDelhi      Airport = "del"
	AirportShanghai   Airport = "pvg"
	AirportDoha       Airport = "doh"
)

// Airports lists every served airport.
var Airports = []Airport{
	AirportSydney,
	AirportMelbourne,
	AirportLosAngeles,
	AirportParis,
	AirportDelhi,
	AirportShanghai,
	AirportDoha,
}

// IsValid checks if the code belongs to a served airport.
// Codes are case sensitive; "SYD" is not served.
func (a Airport) IsValid() bool {
	switch a {
	case AirportSydney, AirportMelbourne, AirportLosAngeles, AirportParis,
		AirportDelhi, AirportShanghai, AirportDoha:
		return true
	default:
		return false
	}
}

// ParseAirport converts a raw code to an Airport.
// The second return value is false when the code is not served.
func ParseAirport(code string) (Airport, bool) {
	a := Airport(code)
	return a, a.IsValid()
}

func (a Airport) String() string {
	return string(a)
}
