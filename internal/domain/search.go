// Package domain contains the search request model and the business rules that
// decide whether a flight search request can be accepted.
package domain

import "time"

// Passenger limits for a single search.
const (
	MinPassengers = 1
	MaxPassengers = 9

	// MaxChildrenPerAdult is how many children a single adult may accompany.
	MaxChildrenPerAdult = 2

	// MaxInfantsPerAdult is how many infants a single adult may hold.
	MaxInfantsPerAdult = 1
)

// SearchRequest holds the parameters of a flight search.
type SearchRequest struct {
	// DepartureDate is the outbound date in dd/mm/yyyy format
	DepartureDate string `json:"departureDate"`

	// DepartureAirportCode is the lower-case code of the origin airport (e.g., "syd")
	DepartureAirportCode Airport `json:"departureAirportCode"`

	// EmergencyRowSeating requests seats in an exit row
	EmergencyRowSeating bool `json:"emergencyRowSeating"`

	// ReturnDate is the inbound date in dd/mm/yyyy format
	ReturnDate string `json:"returnDate"`

	// DestinationAirportCode is the lower-case code of the arrival airport (e.g., "mel")
	DestinationAirportCode Airport `json:"destinationAirportCode"`

	// SeatingClass is the requested fare tier
	SeatingClass SeatingClass `json:"seatingClass"`

	AdultPassengerCount  int `json:"adultPassengerCount"`
	ChildPassengerCount  int `json:"childPassengerCount"`
	InfantPassengerCount int `json:"infantPassengerCount"`
}

// TotalPassengers returns the number of travellers across all age groups.
func (r *SearchRequest) TotalPassengers() int {
	return r.AdultPassengerCount + r.ChildPassengerCount + r.InfantPassengerCount
}

// Check evaluates every rule group against the request and returns the violations.
// All groups are evaluated; an empty result means the request is acceptable.
// today must be a calendar day as returned by CalendarDay.
func (r *SearchRequest) Check(today time.Time) []Violation {
	var violations []Violation
	for _, rule := range rules {
		violations = append(violations, rule(r, today)...)
	}
	return violations
}

// Validate checks the request and returns a *ValidationError wrapping
// ErrInvalidRequest when any rule is broken.
func (r *SearchRequest) Validate(today time.Time) error {
	if violations := r.Check(today); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
