package domain

import (
	"fmt"
	"strings"
	"time"
)

// RuleID names a business rule group.
type RuleID string

// Rule groups, in evaluation order.
const (
	RulePassengerTotal       RuleID = "passenger_total"
	RuleChildSeating         RuleID = "child_seating"
	RuleInfantSeating        RuleID = "infant_seating"
	RuleChildRatio           RuleID = "child_ratio"
	RuleInfantRatio          RuleID = "infant_ratio"
	RuleDateFormat           RuleID = "date_format"
	RuleDepartureNotInPast   RuleID = "departure_not_in_past"
	RuleReturnAfterDeparture RuleID = "return_after_departure"
	RuleSeatingClass         RuleID = "seating_class"
	RuleEmergencyRowClass    RuleID = "emergency_row_class"
	RuleAirports             RuleID = "airports"
)

// Rules lists every rule group in evaluation order.
var Rules = []RuleID{
	RulePassengerTotal,
	RuleChildSeating,
	RuleInfantSeating,
	RuleChildRatio,
	RuleInfantRatio,
	RuleDateFormat,
	RuleDepartureNotInPast,
	RuleReturnAfterDeparture,
	RuleSeatingClass,
	RuleEmergencyRowClass,
	RuleAirports,
}

// Violation describes one broken rule.
type Violation struct {
	Rule    RuleID `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when a request breaks one or more rules.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidRequest.Error()
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

// Is reports ErrInvalidRequest as the cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// RuleIDs returns the violated rule IDs in evaluation order without duplicates.
func (e *ValidationError) RuleIDs() []RuleID {
	return ViolatedRules(e.Violations)
}

// ViolatedRules returns the distinct rule IDs found in violations, keeping order.
func ViolatedRules(violations []Violation) []RuleID {
	seen := make(map[RuleID]bool, len(violations))
	ids := make([]RuleID, 0, len(violations))
	for _, v := range violations {
		if seen[v.Rule] {
			continue
		}
		seen[v.Rule] = true
		ids = append(ids, v.Rule)
	}
	return ids
}

type rule func(r *SearchRequest, today time.Time) []Violation

var rules = []rule{
	checkPassengerTotal,
	checkChildSeating,
	checkInfantSeating,
	checkChildRatio,
	checkInfantRatio,
	checkDates,
	checkSeatingClass,
	checkEmergencyRowClass,
	checkAirports,
}

func violation(id RuleID, format string, args ...any) []Violation {
	return []Violation{{Rule: id, Message: fmt.Sprintf(format, args...)}}
}

func checkPassengerTotal(r *SearchRequest, _ time.Time) []Violation {
	if r.AdultPassengerCount < 0 || r.ChildPassengerCount < 0 || r.InfantPassengerCount < 0 {
		return violation(RulePassengerTotal, "passenger counts cannot be negative")
	}
	total := r.TotalPassengers()
	if total < MinPassengers || total > MaxPassengers {
		return violation(RulePassengerTotal, "total passengers must be between %d and %d, got %d",
			MinPassengers, MaxPassengers, total)
	}
	return nil
}

func checkChildSeating(r *SearchRequest, _ time.Time) []Violation {
	if r.ChildPassengerCount <= 0 {
		return nil
	}
	if r.EmergencyRowSeating {
		return violation(RuleChildSeating, "children cannot be seated in an emergency row")
	}
	if r.SeatingClass == SeatingFirst {
		return violation(RuleChildSeating, "children cannot be seated in first class")
	}
	return nil
}

func checkInfantSeating(r *SearchRequest, _ time.Time) []Violation {
	if r.InfantPassengerCount <= 0 {
		return nil
	}
	if r.EmergencyRowSeating {
		return violation(RuleInfantSeating, "infants cannot be seated in an emergency row")
	}
	if r.SeatingClass == SeatingBusiness {
		return violation(RuleInfantSeating, "infants cannot be seated in business class")
	}
	return nil
}

func checkChildRatio(r *SearchRequest, _ time.Time) []Violation {
	if r.ChildPassengerCount > 0 && r.AdultPassengerCount < 1 {
		return violation(RuleChildRatio, "children must travel with at least one adult")
	}
	if r.ChildPassengerCount > r.AdultPassengerCount*MaxChildrenPerAdult {
		return violation(RuleChildRatio, "at most %d children per adult, got %d children for %d adults",
			MaxChildrenPerAdult, r.ChildPassengerCount, r.AdultPassengerCount)
	}
	return nil
}

func checkInfantRatio(r *SearchRequest, _ time.Time) []Violation {
	if r.InfantPassengerCount > 0 && r.AdultPassengerCount < 1 {
		return violation(RuleInfantRatio, "infants must travel with at least one adult")
	}
	if r.InfantPassengerCount > r.AdultPassengerCount*MaxInfantsPerAdult {
		return violation(RuleInfantRatio, "at most %d infant per adult, got %d infants for %d adults",
			MaxInfantsPerAdult, r.InfantPassengerCount, r.AdultPassengerCount)
	}
	return nil
}

// checkDates covers the format, past-departure and return-order groups.
// The comparison groups only run on dates that parsed.
func checkDates(r *SearchRequest, today time.Time) []Violation {
	var violations []Violation

	departure, depErr := ParseDate(r.DepartureDate)
	if depErr != nil {
		violations = append(violations, violation(RuleDateFormat, "departureDate %q must be a valid dd/mm/yyyy date", r.DepartureDate)...)
	}
	ret, retErr := ParseDate(r.ReturnDate)
	if retErr != nil {
		violations = append(violations, violation(RuleDateFormat, "returnDate %q must be a valid dd/mm/yyyy date", r.ReturnDate)...)
	}

	if depErr == nil && departure.Before(today) {
		violations = append(violations, violation(RuleDepartureNotInPast, "departureDate %s is before today %s",
			r.DepartureDate, FormatDate(today))...)
	}
	if depErr == nil && retErr == nil && !ret.After(departure) {
		violations = append(violations, violation(RuleReturnAfterDeparture, "returnDate %s must be after departureDate %s",
			r.ReturnDate, r.DepartureDate)...)
	}
	return violations
}

func checkSeatingClass(r *SearchRequest, _ time.Time) []Violation {
	if !r.SeatingClass.IsValid() {
		return violation(RuleSeatingClass, "seatingClass must be one of: economy, premium economy, business, first; got %q",
			string(r.SeatingClass))
	}
	return nil
}

func checkEmergencyRowClass(r *SearchRequest, _ time.Time) []Violation {
	if r.EmergencyRowSeating && r.SeatingClass != SeatingEconomy {
		return violation(RuleEmergencyRowClass, "emergency row seating is only available in economy")
	}
	return nil
}

func checkAirports(r *SearchRequest, _ time.Time) []Violation {
	var violations []Violation
	if !r.DepartureAirportCode.IsValid() {
		violations = append(violations, violation(RuleAirports, "departureAirportCode %q is not a served airport",
			string(r.DepartureAirportCode))...)
	}
	if !r.DestinationAirportCode.IsValid() {
		violations = append(violations, violation(RuleAirports, "destinationAirportCode %q is not a served airport",
			string(r.DestinationAirportCode))...)
	}
	if r.DepartureAirportCode == r.DestinationAirportCode {
		violations = append(violations, violation(RuleAirports, "departure and destination airports must be different")...)
	}
	return violations
}
