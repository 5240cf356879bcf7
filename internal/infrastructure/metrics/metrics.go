// Package metrics exposes Prometheus counters for search validation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/flight-search/flight-search-validator/internal/domain"
)

// Outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Recorder counts validation outcomes and violated rules.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightsearch",
			Name:      "validations_total",
			Help:      "Number of search requests validated, by outcome.",
		}, []string{"outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightsearch",
			Name:      "rule_violations_total",
			Help:      "Number of rejected search requests that broke each rule.",
		}, []string{"rule"}),
	}

	for _, c := range []prometheus.Collector{r.validations, r.violations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Pre-create series so dashboards see zeros before the first request.
	r.validations.WithLabelValues(OutcomeAccepted)
	r.validations.WithLabelValues(OutcomeRejected)
	for _, id := range domain.Rules {
		r.violations.WithLabelValues(string(id))
	}

	return r, nil
}

// MustNew is New that panics on registration errors.
func MustNew(reg prometheus.Registerer) *Recorder {
	r, err := New(reg)
	if err != nil {
		panic(err)
	}
	return r
}

// Accepted records an accepted request.
func (r *Recorder) Accepted() {
	if r == nil {
		return
	}
	r.validations.WithLabelValues(OutcomeAccepted).Inc()
}

// Rejected records a rejected request and each distinct rule it broke.
func (r *Recorder) Rejected(rules []domain.RuleID) {
	if r == nil {
		return
	}
	r.validations.WithLabelValues(OutcomeRejected).Inc()
	for _, id := range rules {
		r.violations.WithLabelValues(string(id)).Inc()
	}
}
