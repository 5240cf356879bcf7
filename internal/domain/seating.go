package domain

// SeatingClass is the fare tier requested for a search.
type SeatingClass string

// Available seating classes.
const (
	SeatingEconomy        SeatingClass = "economy"
	SeatingPremiumEconomy SeatingClass = "premium economy"
	SeatingBusiness       SeatingClass = "business"
	SeatingFirst          SeatingClass = "first"
)

// SeatingClasses lists every seating class in cabin order.
var SeatingClasses = []SeatingClass{
	SeatingEconomy,
	SeatingPremiumEconomy,
	SeatingBusiness,
	SeatingFirst,
}

// IsValid checks if the seating class is one of the known tiers.
// Matching is exact: "Economy" is not a valid class.
func (s SeatingClass) IsValid() bool {
	switch s {
	case SeatingEconomy, SeatingPremiumEconomy, SeatingBusiness, SeatingFirst:
		return true
	default:
		return false
	}
}

// ParseSeatingClass converts a raw string to a SeatingClass.
// The second return value is false when the string is not a known tier.
func ParseSeatingClass(s string) (SeatingClass, bool) {
	c := SeatingClass(s)
	return c, c.IsValid()
}

func (s SeatingClass) String() string {
	return string(s)
}
