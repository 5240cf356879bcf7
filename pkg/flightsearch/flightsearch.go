// Package flightsearch is the programmatic entry point for validating flight
// search requests.
//
// A Search validates the nine search parameters against the booking rules and,
// when every rule passes, keeps them as its last accepted request:
//
//	s := flightsearch.New()
//	if s.Validate("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 2, 1, 0) {
//		fmt.Println(s.DepartureAirportCode()) // syd
//	}
//
// Accessors return zero values until the first accepted request. A Search is
// safe for concurrent use.
package flightsearch

import (
	"context"
	"time"

	"github.com/flight-search/flight-search-validator/internal/adapter/store"
	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-search-validator/internal/usecase"
)

// Search validates flight search requests and remembers the last accepted one.
type Search struct {
	validator *usecase.RequestValidator
	snapshot  *store.MemoryStore
}

// Option configures a Search.
type Option func(*usecase.Config)

// WithClock sets the clock "today" is read from.
func WithClock(clock timeutil.Clock) Option {
	return func(c *usecase.Config) { c.Clock = clock }
}

// WithLocation sets the zone "today" is observed in. The default is the host zone.
func WithLocation(loc *time.Location) Option {
	return func(c *usecase.Config) { c.Location = loc }
}

// New creates a Search with no accepted request.
func New(opts ...Option) *Search {
	cfg := &usecase.Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	snapshot := store.NewMemoryStore()
	return &Search{
		validator: usecase.NewRequestValidator(snapshot, cfg),
		snapshot:  snapshot,
	}
}

// Validate reports whether the search passes every rule. On success the
// parameters replace the stored request; on failure the stored request is kept.
// Malformed input never panics; it simply fails validation.
func (s *Search) Validate(departureDate, departureAirportCode string, emergencyRowSeating bool,
	returnDate, destinationAirportCode, seatingClass string,
	adultPassengerCount, childPassengerCount, infantPassengerCount int) bool {
	req := newRequest(departureDate, departureAirportCode, emergencyRowSeating,
		returnDate, destinationAirportCode, seatingClass,
		adultPassengerCount, childPassengerCount, infantPassengerCount)

	result, err := s.validator.Validate(context.Background(), req)
	return err == nil && result.Accepted
}

// Violations returns the IDs of the rules the parameters break, without storing
// anything. An empty slice means Validate would accept them.
func (s *Search) Violations(departureDate, departureAirportCode string, emergencyRowSeating bool,
	returnDate, destinationAirportCode, seatingClass string,
	adultPassengerCount, childPassengerCount, infantPassengerCount int) []string {
	req := newRequest(departureDate, departureAirportCode, emergencyRowSeating,
		returnDate, destinationAirportCode, seatingClass,
		adultPassengerCount, childPassengerCount, infantPassengerCount)

	rules := s.validator.Evaluate(req).Rules()
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = string(r)
	}
	return out
}

func newRequest(departureDate, departureAirportCode string, emergencyRowSeating bool,
	returnDate, destinationAirportCode, seatingClass string,
	adults, children, infants int) domain.SearchRequest {
	return domain.SearchRequest{
		DepartureDate:          departureDate,
		DepartureAirportCode:   domain.Airport(departureAirportCode),
		EmergencyRowSeating:    emergencyRowSeating,
		ReturnDate:             returnDate,
		DestinationAirportCode: domain.Airport(destinationAirportCode),
		SeatingClass:           domain.SeatingClass(seatingClass),
		AdultPassengerCount:    adults,
		ChildPassengerCount:    children,
		InfantPassengerCount:   infants,
	}
}

// last returns the stored request; the memory store never fails.
func (s *Search) last() domain.SearchRequest {
	req, _, _ := s.snapshot.Load(context.Background())
	return req
}

// Validated reports whether any request has been accepted yet.
func (s *Search) Validated() bool {
	_, ok, _ := s.snapshot.Load(context.Background())
	return ok
}

func (s *Search) DepartureDate() string { return s.last().DepartureDate }

func (s *Search) DepartureAirportCode() string { return string(s.last().DepartureAirportCode) }

func (s *Search) EmergencyRowSeating() bool { return s.last().EmergencyRowSeating }

func (s *Search) ReturnDate() string { return s.last().ReturnDate }

func (s *Search) DestinationAirportCode() string { return string(s.last().DestinationAirportCode) }

func (s *Search) SeatingClass() string { return string(s.last().SeatingClass) }

func (s *Search) AdultPassengerCount() int { return s.last().AdultPassengerCount }

func (s *Search) ChildPassengerCount() int { return s.last().ChildPassengerCount }

func (s *Search) InfantPassengerCount() int { return s.last().InfantPassengerCount }
