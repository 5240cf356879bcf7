// Package timeutil provides the clock and timezone helpers used to decide what "today" is.
package timeutil

import (
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockOnDate creates a mock clock set to noon UTC of the given day.
func NewMockClockOnDate(year int, month time.Month, day int) *MockClock {
	return &MockClock{fixedTime: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the mock clock by the given duration. Negative values move it back.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceDays moves the mock clock by whole calendar days.
func (m *MockClock) AdvanceDays(days int) {
	m.fixedTime = m.fixedTime.AddDate(0, 0, days)
}

// Today returns the calendar day of clock.Now() as observed in loc,
// expressed as midnight UTC so it compares directly with parsed dates.
// A nil loc means the process's local zone.
func Today(clock Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := clock.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
