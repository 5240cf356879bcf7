package flightsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/flight-search-validator/internal/infrastructure/timeutil"
)

// newSearch returns a Search whose "today" is 1 December 2025 UTC.
func newSearch() *Search {
	return New(
		WithClock(timeutil.NewMockClockOnDate(2025, time.December, 1)),
		WithLocation(time.UTC),
	)
}

func assertEmpty(t *testing.T, s *Search) {
	t.Helper()
	assert.False(t, s.Validated())
	assert.Empty(t, s.DepartureDate())
	assert.Empty(t, s.DepartureAirportCode())
	assert.False(t, s.EmergencyRowSeating())
	assert.Empty(t, s.ReturnDate())
	assert.Empty(t, s.DestinationAirportCode())
	assert.Empty(t, s.SeatingClass())
	assert.Zero(t, s.AdultPassengerCount())
	assert.Zero(t, s.ChildPassengerCount())
	assert.Zero(t, s.InfantPassengerCount())
}

func TestValidSearch(t *testing.T) {
	s := newSearch()

	ok := s.Validate("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 2, 1, 0)

	assert.True(t, ok, "valid search should return true")
}

func TestAttributesInitializedOnSuccess(t *testing.T) {
	s := newSearch()

	ok := s.Validate("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 2, 1, 0)

	assert.True(t, ok)
	assert.True(t, s.Validated())
	assert.Equal(t, "25/12/2025", s.DepartureDate())
	assert.Equal(t, "syd", s.DepartureAirportCode())
	assert.False(t, s.EmergencyRowSeating())
	assert.Equal(t, "30/12/2025", s.ReturnDate())
	assert.Equal(t, "mel", s.DestinationAirportCode())
	assert.Equal(t, "economy", s.SeatingClass())
	assert.Equal(t, 2, s.AdultPassengerCount())
	assert.Equal(t, 1, s.ChildPassengerCount())
	assert.Equal(t, 0, s.InfantPassengerCount())
}

func TestAttributesNotInitializedOnFailure(t *testing.T) {
	s := newSearch()

	ok := s.Validate("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 0, 0, 0)

	assert.False(t, ok, "zero passengers should return false")
	assertEmpty(t, s)
}

func TestRejectedSearches(t *testing.T) {
	tests := []struct {
		name      string
		dep       string
		from      string
		emergency bool
		ret       string
		to        string
		class     string
		adults    int
		children  int
		infants   int
		wantRules []string
	}{
		{"invalid date", "32/13/2025", "syd", false, "30/12/2025", "mel", "economy", 1, 0, 0, []string{"date_format"}},
		{"children in emergency row", "25/12/2025", "syd", true, "30/12/2025", "mel", "economy", 1, 1, 0, []string{"child_seating"}},
		{"three children for one adult", "25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 1, 3, 0, []string{"child_ratio"}},
		{"two infants for one adult", "25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 1, 0, 2, []string{"infant_ratio"}},
		{"departure yesterday", "30/11/2025", "syd", false, "30/12/2025", "mel", "economy", 1, 0, 0, []string{"departure_not_in_past"}},
		{"return on departure day", "25/12/2025", "syd", false, "25/12/2025", "mel", "economy", 1, 0, 0, []string{"return_after_departure"}},
		{"unknown class", "25/12/2025", "syd", false, "30/12/2025", "mel", "coach", 1, 0, 0, []string{"seating_class"}},
		{"emergency row in first", "25/12/2025", "syd", true, "30/12/2025", "mel", "first", 1, 0, 0, []string{"emergency_row_class"}},
		{"same airports", "25/12/2025", "doh", false, "30/12/2025", "doh", "economy", 1, 0, 0, []string{"airports"}},
		{"ten passengers", "25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 10, 0, 0, []string{"passenger_total"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSearch()

			ok := s.Validate(tt.dep, tt.from, tt.emergency, tt.ret, tt.to, tt.class, tt.adults, tt.children, tt.infants)

			assert.False(t, ok)
			assertEmpty(t, s)
			assert.Equal(t, tt.wantRules,
				s.Violations(tt.dep, tt.from, tt.emergency, tt.ret, tt.to, tt.class, tt.adults, tt.children, tt.infants))
		})
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		dep      string
		ret      string
		adults   int
		children int
		infants  int
		want     bool
	}{
		{"two children per adult", "25/12/2025", "30/12/2025", 1, 2, 0, true},
		{"three children per adult", "25/12/2025", "30/12/2025", 1, 3, 0, false},
		{"one infant per adult", "25/12/2025", "30/12/2025", 1, 0, 1, true},
		{"two infants per adult", "25/12/2025", "30/12/2025", 1, 0, 2, false},
		{"departure today", "01/12/2025", "05/12/2025", 1, 0, 0, true},
		{"departure yesterday", "30/11/2025", "05/12/2025", 1, 0, 0, false},
		{"return equals departure", "10/12/2025", "10/12/2025", 1, 0, 0, false},
		{"return the next day", "10/12/2025", "11/12/2025", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSearch()
			got := s.Validate(tt.dep, "lax", false, tt.ret, "pvg", "premium economy", tt.adults, tt.children, tt.infants)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFailureKeepsPreviousSuccess(t *testing.T) {
	s := newSearch()

	assert.True(t, s.Validate("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 2, 1, 0))
	assert.False(t, s.Validate("25/12/2025", "syd", true, "30/12/2025", "mel", "economy", 1, 1, 0))

	assert.Equal(t, "syd", s.DepartureAirportCode())
	assert.False(t, s.EmergencyRowSeating())
	assert.Equal(t, 2, s.AdultPassengerCount())
	assert.Equal(t, 1, s.ChildPassengerCount())
}

func TestIdempotentSuccess(t *testing.T) {
	s := newSearch()

	assert.True(t, s.Validate("25/12/2025", "del", true, "30/12/2025", "cdg", "economy", 3, 0, 0))
	first := []interface{}{s.DepartureDate(), s.DepartureAirportCode(), s.EmergencyRowSeating(), s.ReturnDate(),
		s.DestinationAirportCode(), s.SeatingClass(), s.AdultPassengerCount(), s.ChildPassengerCount(), s.InfantPassengerCount()}

	assert.True(t, s.Validate("25/12/2025", "del", true, "30/12/2025", "cdg", "economy", 3, 0, 0))
	second := []interface{}{s.DepartureDate(), s.DepartureAirportCode(), s.EmergencyRowSeating(), s.ReturnDate(),
		s.DestinationAirportCode(), s.SeatingClass(), s.AdultPassengerCount(), s.ChildPassengerCount(), s.InfantPassengerCount()}

	assert.Equal(t, first, second)
	assert.True(t, s.EmergencyRowSeating())
}

func TestViolations_DoesNotStore(t *testing.T) {
	s := newSearch()

	rules := s.Violations("25/12/2025", "syd", false, "30/12/2025", "mel", "economy", 2, 1, 0)

	assert.Empty(t, rules)
	assertEmpty(t, s)
}

func TestNew_DefaultsToSystemClock(t *testing.T) {
	s := New()
	today := time.Now()
	dep := today.AddDate(0, 0, 1).Format("02/01/2006")
	ret := today.AddDate(0, 0, 8).Format("02/01/2006")

	assert.True(t, s.Validate(dep, "syd", false, ret, "mel", "economy", 1, 0, 0))
}
