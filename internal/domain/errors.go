package domain

import "errors"

// Sentinel errors for the flight search validator.
var (
	// ErrInvalidRequest indicates that a search request broke one or more business rules.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrInvalidDate indicates that a date string is not a real dd/mm/yyyy calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrSnapshotUnavailable indicates that the snapshot store could not be read or written.
	ErrSnapshotUnavailable = errors.New("snapshot store unavailable")
)
