package usecase

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-search-validator/internal/adapter/store"
	"github.com/flight-search/flight-search-validator/internal/domain"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/metrics"
	"github.com/flight-search/flight-search-validator/internal/infrastructure/timeutil"
)

// newTestValidator returns a validator whose "today" is 1 December 2025 UTC.
func newTestValidator(s domain.SnapshotStore) (*RequestValidator, *timeutil.MockClock) {
	clock := timeutil.NewMockClockOnDate(2025, time.December, 1)
	return NewRequestValidator(s, &Config{Clock: clock, Location: time.UTC}), clock
}

func validSearch() domain.SearchRequest {
	return domain.SearchRequest{
		DepartureDate:          "25/12/2025",
		DepartureAirportCode:   domain.AirportSydney,
		EmergencyRowSeating:    false,
		ReturnDate:             "30/12/2025",
		DestinationAirportCode: domain.AirportMelbourne,
		SeatingClass:           domain.SeatingEconomy,
		AdultPassengerCount:    2,
		ChildPassengerCount:    1,
		InfantPassengerCount:   0,
	}
}

func TestRequestValidator_Validate(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*domain.SearchRequest)
		wantAccepted bool
		wantRules    []domain.RuleID
	}{
		{
			name:         "valid search is accepted",
			modify:       func(r *domain.SearchRequest) {},
			wantAccepted: true,
		},
		{
			name: "zero passengers is rejected",
			modify: func(r *domain.SearchRequest) {
				r.AdultPassengerCount, r.ChildPassengerCount = 0, 0
			},
			wantRules: []domain.RuleID{domain.RulePassengerTotal},
		},
		{
			name:      "unparseable date is rejected",
			modify:    func(r *domain.SearchRequest) { r.DepartureDate = "32/13/2025" },
			wantRules: []domain.RuleID{domain.RuleDateFormat},
		},
		{
			name: "child in emergency row is rejected",
			modify: func(r *domain.SearchRequest) {
				r.AdultPassengerCount, r.EmergencyRowSeating = 1, true
			},
			wantRules: []domain.RuleID{domain.RuleChildSeating},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			v, _ := newTestValidator(s)
			req := validSearch()
			tt.modify(&req)

			result, err := v.Validate(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAccepted, result.Accepted)
			snapshot, ok, err := v.Snapshot(context.Background())
			require.NoError(t, err)

			if tt.wantAccepted {
				require.NotNil(t, result.Request)
				assert.Equal(t, req, *result.Request)
				assert.Empty(t, result.Violations)
				assert.NoError(t, result.Err())
				assert.True(t, ok)
				assert.Equal(t, req, snapshot)
				return
			}

			assert.Nil(t, result.Request)
			assert.Equal(t, tt.wantRules, result.Rules())
			assert.ErrorIs(t, result.Err(), domain.ErrInvalidRequest)
			assert.False(t, ok, "rejected search must not create a snapshot")
			assert.Equal(t, domain.SearchRequest{}, snapshot)
		})
	}
}

func TestRequestValidator_RejectionKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestValidator(store.NewMemoryStore())

	first := validSearch()
	result, err := v.Validate(ctx, first)
	require.NoError(t, err)
	require.True(t, result.Accepted)

	bad := validSearch()
	bad.DestinationAirportCode = "xyz"
	result, err = v.Validate(ctx, bad)
	require.NoError(t, err)
	assert.False(t, result.Accepted)

	snapshot, ok, err := v.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, snapshot)
}

func TestRequestValidator_SuccessReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestValidator(store.NewMemoryStore())

	_, err := v.Validate(ctx, validSearch())
	require.NoError(t, err)

	second := validSearch()
	second.DepartureAirportCode = domain.AirportParis
	second.DestinationAirportCode = domain.AirportDoha
	second.SeatingClass = domain.SeatingPremiumEconomy
	second.ChildPassengerCount = 0
	second.InfantPassengerCount = 2
	_, err = v.Validate(ctx, second)
	require.NoError(t, err)

	snapshot, _, _ := v.Snapshot(ctx)
	assert.Equal(t, second, snapshot)
}

func TestRequestValidator_Idempotent(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestValidator(store.NewMemoryStore())
	req := validSearch()

	r1, err := v.Validate(ctx, req)
	require.NoError(t, err)
	s1, _, _ := v.Snapshot(ctx)

	r2, err := v.Validate(ctx, req)
	require.NoError(t, err)
	s2, _, _ := v.Snapshot(ctx)

	assert.True(t, r1.Accepted)
	assert.True(t, r2.Accepted)
	assert.Equal(t, s1, s2)
}

func TestRequestValidator_DateBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		departure    string
		ret          string
		wantAccepted bool
	}{
		{"departure today", "01/12/2025", "02/12/2025", true},
		{"departure yesterday", "30/11/2025", "02/12/2025", false},
		{"return equals departure", "10/12/2025", "10/12/2025", false},
		{"return one day after departure", "10/12/2025", "11/12/2025", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestValidator(store.NewMemoryStore())
			req := validSearch()
			req.DepartureDate, req.ReturnDate = tt.departure, tt.ret

			result := v.Evaluate(req)

			assert.Equal(t, tt.wantAccepted, result.Accepted)
		})
	}
}

func TestRequestValidator_TodayFollowsClock(t *testing.T) {
	v, clock := newTestValidator(store.NewMemoryStore())
	req := validSearch()

	assert.True(t, v.Evaluate(req).Accepted)

	clock.AdvanceDays(25) // 26 December: departure is now in the past
	result := v.Evaluate(req)
	assert.False(t, result.Accepted)
	assert.Equal(t, []domain.RuleID{domain.RuleDepartureNotInPast}, result.Rules())
}

func TestRequestValidator_TodayUsesLocation(t *testing.T) {
	// 20:00 UTC on 30 November is already 1 December in Sydney.
	clock := timeutil.NewMockClock(time.Date(2025, 11, 30, 20, 0, 0, 0, time.UTC))
	req := validSearch()
	req.DepartureDate = "30/11/2025"

	utc := NewRequestValidator(store.NewMemoryStore(), &Config{Clock: clock, Location: time.UTC})
	sydney := NewRequestValidator(store.NewMemoryStore(), &Config{
		Clock:    clock,
		Location: timeutil.MustGetLocation("Australia/Sydney"),
	})

	assert.True(t, utc.Evaluate(req).Accepted)
	assert.False(t, sydney.Evaluate(req).Accepted)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), sydney.Today())
}

func TestRequestValidator_EvaluateDoesNotCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := domain.NewMockSnapshotStore(ctrl)
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	v, _ := newTestValidator(mockStore)

	assert.True(t, v.Evaluate(validSearch()).Accepted)
}

func TestRequestValidator_RejectedDoesNotTouchStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := domain.NewMockSnapshotStore(ctrl)
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	v, _ := newTestValidator(mockStore)
	req := validSearch()
	req.SeatingClass = "coach"

	result, err := v.Validate(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Accepted)
}

func TestRequestValidator_StoreFailures(t *testing.T) {
	storeErr := errors.New("redis down")

	t.Run("save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := domain.NewMockSnapshotStore(ctrl)
		mockStore.EXPECT().Save(gomock.Any(), validSearch()).Return(storeErr)

		v, _ := newTestValidator(mockStore)
		_, err := v.Validate(context.Background(), validSearch())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)
		assert.Contains(t, err.Error(), "redis down")
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := domain.NewMockSnapshotStore(ctrl)
		mockStore.EXPECT().Load(gomock.Any()).Return(domain.SearchRequest{}, false, storeErr)

		v, _ := newTestValidator(mockStore)
		_, ok, err := v.Snapshot(context.Background())

		assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)
		assert.False(t, ok)
	})
}

func TestRequestValidator_ConcurrentValidate(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestValidator(store.NewMemoryStore())

	requests := []domain.SearchRequest{validSearch(), validSearch()}
	requests[1].DestinationAirportCode = domain.AirportLosAngeles

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(req domain.SearchRequest) {
			defer wg.Done()
			result, err := v.Validate(ctx, req)
			assert.NoError(t, err)
			assert.True(t, result.Accepted)
		}(requests[i%2])
	}
	wg.Wait()

	snapshot, ok, err := v.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, requests, snapshot, "snapshot must be one whole request, never a mix")
}

func TestRequestValidator_RecordsMetricsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, &buf)
	rec, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	v := NewRequestValidator(store.NewMemoryStore(), &Config{
		Clock:    timeutil.NewMockClockOnDate(2025, time.December, 1),
		Location: time.UTC,
		Logger:   log,
		Metrics:  rec,
	})

	_, err = v.Validate(context.Background(), validSearch())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Search request accepted")

	buf.Reset()
	bad := validSearch()
	bad.ChildPassengerCount = 5
	_, err = v.Validate(context.Background(), bad)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Search request rejected")
	assert.Contains(t, buf.String(), string(domain.RuleChildRatio))
}

func TestNewRequestValidator_Defaults(t *testing.T) {
	v := NewRequestValidator(store.NewMemoryStore(), nil)

	assert.Equal(t, time.Local, v.location)
	assert.NotNil(t, v.clock)
	assert.NotNil(t, v.log)
	assert.Nil(t, v.metrics)
	assert.Equal(t, timeutil.Today(timeutil.NewRealClock(), time.Local), v.Today())
}
