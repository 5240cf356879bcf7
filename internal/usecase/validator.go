// Package usecase contains the search validation workflow: evaluate the business
// rules against today's date and commit accepted requests as the instance snapshot.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/metrics"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/timeutil"
)

// SearchValidator defines the interface for search request validation.
type SearchValidator interface {
	// Validate evaluates every rule and, when all pass, stores req as the snapshot.
	Validate(ctx context.Context, req domain.SearchRequest) (Result, error)

	// Snapshot returns the last accepted request. ok is false before the first success.
	Snapshot(ctx context.Context) (req domain.SearchRequest, ok bool, err error)
}

// Result is the outcome of validating one search request.
type Result struct {
	// Accepted is true when no rule was broken
	Accepted bool `json:"accepted"`

	// Request is the committed request, set only when Accepted
	Request *domain.SearchRequest `json:"request,omitempty"`

	// Violations lists every broken rule, empty when Accepted
	Violations []domain.Violation `json:"violations,omitempty"`
}

// Rules returns the distinct rule IDs that were violated.
func (r Result) Rules() []domain.RuleID {
	return domain.ViolatedRules(r.Violations)
}

// Err returns a *domain.ValidationError for rejected results and nil otherwise.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	return &domain.ValidationError{Violations: r.Violations}
}

// Config contains optional collaborators for the validator.
type Config struct {
	// Clock supplies the current time; defaults to the system clock
	Clock timeutil.Clock

	// Location is the zone "today" is observed in; defaults to the host zone
	Location *time.Location

	// Logger defaults to a no-op logger
	Logger *logger.Logger

	// Metrics may be nil
	Metrics *metrics.Recorder
}

// RequestValidator evaluates search requests and keeps the last accepted one.
// Validate calls are serialized so evaluate-then-commit is atomic per instance.
type RequestValidator struct {
	store    domain.SnapshotStore
	clock    timeutil.Clock
	location *time.Location
	log      *logger.Logger
	metrics  *metrics.Recorder

	mu sync.Mutex
}

// NewRequestValidator creates a RequestValidator that commits snapshots to store.
// If config is nil, the system clock and local zone are used.
func NewRequestValidator(store domain.SnapshotStore, config *Config) *RequestValidator {
	v := &RequestValidator{
		store:    store,
		clock:    timeutil.NewRealClock(),
		location: time.Local,
		log:      logger.Nop(),
	}
	if config != nil {
		if config.Clock != nil {
			v.clock = config.Clock
		}
		if config.Location != nil {
			v.location = config.Location
		}
		if config.Logger != nil {
			v.log = config.Logger
		}
		v.metrics = config.Metrics
	}
	return v
}

// Today returns the calendar day requests are currently evaluated against.
func (v *RequestValidator) Today() time.Time {
	return timeutil.Today(v.clock, v.location)
}

// Evaluate runs every rule without touching the snapshot.
func (v *RequestValidator) Evaluate(req domain.SearchRequest) Result {
	violations := req.Check(v.Today())
	if len(violations) > 0 {
		return Result{Violations: violations}
	}
	accepted := req
	return Result{Accepted: true, Request: &accepted}
}

// Validate implements SearchValidator.Validate.
// A rejected request leaves the snapshot untouched and returns a nil error.
// An error is returned only when an accepted request could not be committed.
func (v *RequestValidator) Validate(ctx context.Context, req domain.SearchRequest) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	result := v.Evaluate(req)
	if !result.Accepted {
		rules := result.Rules()
		v.metrics.Rejected(rules)
		v.log.Debug().
			Str("departure_airport", req.DepartureAirportCode.String()).
			Str("destination_airport", req.DestinationAirportCode.String()).
			Strs("violations", ruleStrings(rules)).
			Msg("Search request rejected")
		return result, nil
	}

	if err := v.store.Save(ctx, req); err != nil {
		v.log.Error().Err(err).Msg("Failed to commit search snapshot")
		return result, fmt.Errorf("%w: save snapshot: %w", domain.ErrSnapshotUnavailable, err)
	}

	v.metrics.Accepted()
	v.log.Info().
		Str("departure_date", req.DepartureDate).
		Str("return_date", req.ReturnDate).
		Str("departure_airport", req.DepartureAirportCode.String()).
		Str("destination_airport", req.DestinationAirportCode.String()).
		Str("seating_class", req.SeatingClass.String()).
		Int("passengers", req.TotalPassengers()).
		Msg("Search request accepted")

	return result, nil
}

// Snapshot implements SearchValidator.Snapshot.
func (v *RequestValidator) Snapshot(ctx context.Context) (domain.SearchRequest, bool, error) {
	req, ok, err := v.store.Load(ctx)
	if err != nil {
		return domain.SearchRequest{}, false, fmt.Errorf("%w: load snapshot: %w", domain.ErrSnapshotUnavailable, err)
	}
	return req, ok, nil
}

func ruleStrings(rules []domain.RuleID) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = string(r)
	}
	return out
}

var _ SearchValidator = (*RequestValidator)(nil)
