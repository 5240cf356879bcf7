package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations.
var locationCache sync.Map

// Timezone names accepted in configuration.
const (
	// Local is the zone of the host running the validator.
	Local = "Local"

	// UTC is the Coordinated Universal Time.
	UTC = "UTC"
)

// GetLocation returns a cached timezone location.
// "Local" resolves to the host zone and "" to UTC, as with time.LoadLocation.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
