package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name         string
		violations   []Violation
		wantContains []string
		wantRules    []RuleID
	}{
		{
			name:         "no violations falls back to sentinel message",
			violations:   nil,
			wantContains: []string{"invalid search request"},
			wantRules:    []RuleID{},
		},
		{
			name: "single violation",
			violations: []Violation{
				{Rule: RuleSeatingClass, Message: "bad class"},
			},
			wantContains: []string{"invalid search request", "bad class"},
			wantRules:    []RuleID{RuleSeatingClass},
		},
		{
			name: "duplicate rules are reported once",
			violations: []Violation{
				{Rule: RuleAirports, Message: "unknown origin"},
				{Rule: RuleDateFormat, Message: "bad date"},
				{Rule: RuleAirports, Message: "unknown destination"},
			},
			wantContains: []string{"unknown origin", "bad date", "unknown destination"},
			wantRules:    []RuleID{RuleAirports, RuleDateFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Violations: tt.violations}

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.False(t, errors.Is(err, ErrInvalidDate))
			assert.Equal(t, tt.wantRules, err.RuleIDs())
		})
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	inner := &ValidationError{Violations: []Violation{{Rule: RuleChildRatio, Message: "too many children"}}}
	err := fmt.Errorf("validate search: %w", inner)

	assert.True(t, errors.Is(err, ErrInvalidRequest))

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, []RuleID{RuleChildRatio}, vErr.RuleIDs())
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{ErrInvalidRequest, ErrInvalidDate, ErrSnapshotUnavailable}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
