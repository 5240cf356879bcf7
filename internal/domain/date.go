package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the accepted date format: two-digit day, two-digit month, four-digit year.
const DateLayout = "02/01/2006"

// datePattern matches dates in dd/mm/yyyy format.
var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseDate parses a dd/mm/yyyy string into the UTC midnight of that calendar day.
// Dates that do not exist, such as 31/02/2025 or 32/01/2025, are rejected rather
// than rolled over into the next month.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q is not in dd/mm/yyyy format", ErrInvalidDate, s)
	}

	// time.Parse validates the day against the month and leap years.
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}
	return t, nil
}

// CalendarDay truncates t to midnight UTC of its calendar day in t's own location.
// Use it to compare an instant against values returned by ParseDate.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats t in dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
