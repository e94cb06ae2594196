package engine

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/db"
	"github.com/fly2any/alt-airports-api/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, manager *cache.Manager) *Engine {
	t.Helper()
	cfg := config.TestConfig().EngineConfig
	repo := airports.Default()
	return New(repo, NewFareEstimator(nil, cfg), manager, nil, cfg)
}

func newTestCache(t *testing.T) *cache.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewManager(cache.NewRedisCache(client, "test"))
}

// pairFareStore serves scripted aggregates per "ORG-DST" pair and reports
// no data for everything else.
type pairFareStore struct {
	fares map[string]db.FareAggregate
}

func (s pairFareStore) AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (db.FareAggregate, error) {
	if agg, ok := s.fares[origin+"-"+destination]; ok {
		return agg, nil
	}
	return db.FareAggregate{}, db.ErrNoData
}

func (s pairFareStore) Close() error { return nil }

func TestRecommendBasic(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	store := pairFareStore{fares: map[string]db.FareAggregate{
		"JFK-LAX": {Median: 450, SampleSize: 40, Currency: "USD"},
		"EWR-LAX": {Median: 300, SampleSize: 40, Currency: "USD"},
	}}
	e := New(airports.Default(), NewFareEstimator(store, cfg), nil, nil, cfg)

	rec, err := e.Recommend(context.Background(), Request{
		Origin:      "jfk",
		Destination: "lax",
		DateBucket:  "2026-10-02",
	})
	require.NoError(t, err)

	assert.True(t, rec.Baseline.IsBaseline)
	assert.Equal(t, "JFK-LAX", rec.Baseline.PairCode())
	assert.Equal(t, ConfidenceHistorical, rec.Baseline.Fare.Confidence)
	assert.Equal(t, 450.0, rec.Baseline.TotalCost)
	assert.False(t, rec.CacheHit)

	// The markedly cheaper EWR departure must surface as an alternative.
	require.NotEmpty(t, rec.Alternatives)
	top := rec.Alternatives[0]
	assert.Equal(t, "EWR-LAX", top.PairCode())
	assert.Positive(t, top.Score)
	assert.Positive(t, top.NetSavings)
	assert.Positive(t, top.AddedMinutes)
	assert.True(t, top.Origin.SameMetro, "EWR shares the NYC metro group")
	assert.Contains(t, top.Reason, "EWR")

	seen := map[string]bool{}
	for _, alt := range rec.Alternatives {
		assert.False(t, alt.IsBaseline)
		assert.True(t, alt.Fare.Usable())
		assert.Positive(t, alt.Score)
		assert.False(t, seen[alt.PairCode()], "duplicate pair %s", alt.PairCode())
		seen[alt.PairCode()] = true
		assert.False(t, alt.PairCode() == "JFK-LAX", "baseline pair must not reappear as an alternative")
	}

	// Ordering: scores non-increasing.
	for i := 1; i < len(rec.Alternatives); i++ {
		assert.GreaterOrEqual(t, rec.Alternatives[i-1].Score, rec.Alternatives[i].Score)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	e := newTestEngine(t, nil)
	req := Request{Origin: "JFK", Destination: "LAX", DateBucket: "2026-W40"}

	a, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	b, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, b.Alternatives, len(a.Alternatives))
	for i := range a.Alternatives {
		assert.Equal(t, a.Alternatives[i].PairCode(), b.Alternatives[i].PairCode())
		assert.Equal(t, a.Alternatives[i].Score, b.Alternatives[i].Score)
	}
}

func TestRecommendCacheRoundTrip(t *testing.T) {
	manager := newTestCache(t)
	e := newTestEngine(t, manager)
	req := Request{Origin: "JFK", Destination: "LAX", DateBucket: "2026-W40"}

	first, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := e.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	require.Len(t, second.Alternatives, len(first.Alternatives))
	for i := range first.Alternatives {
		assert.Equal(t, first.Alternatives[i].PairCode(), second.Alternatives[i].PairCode())
	}
}

func TestRecommendCacheKeyedByParameters(t *testing.T) {
	manager := newTestCache(t)
	e := newTestEngine(t, manager)

	_, err := e.Recommend(context.Background(), Request{Origin: "JFK", Destination: "LAX", DateBucket: "2026-W40"})
	require.NoError(t, err)

	// Different cabin: distinct cache entry, so no hit.
	other, err := e.Recommend(context.Background(), Request{Origin: "JFK", Destination: "LAX", DateBucket: "2026-W40", Cabin: CabinBusiness})
	require.NoError(t, err)
	assert.False(t, other.CacheHit)
}

func TestRecommendUnknownAirport(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.Recommend(context.Background(), Request{Origin: "XXX", Destination: "LAX", DateBucket: "2026-W40"})
	require.Error(t, err)
	assert.ErrorIs(t, err, airports.ErrNotFound)
}

func TestRecommendInvalidRequest(t *testing.T) {
	e := newTestEngine(t, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"same origin and destination", Request{Origin: "JFK", Destination: "JFK", DateBucket: "2026-W40"}},
		{"malformed code", Request{Origin: "JFKX", Destination: "LAX", DateBucket: "2026-W40"}},
		{"missing date bucket", Request{Origin: "JFK", Destination: "LAX"}},
		{"garbage date bucket", Request{Origin: "JFK", Destination: "LAX", DateBucket: "next tuesday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Recommend(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestRecommendIsolatedAirportKeepsBaseline(t *testing.T) {
	e := newTestEngine(t, nil)

	rec, err := e.Recommend(context.Background(), Request{Origin: "HNL", Destination: "ANC", DateBucket: "2026-W40"})
	require.NoError(t, err)
	assert.True(t, rec.Baseline.IsBaseline)
	assert.Empty(t, rec.Alternatives)
	assert.Equal(t, NoAlternativesReason, rec.Baseline.Reason)
}

func TestNearby(t *testing.T) {
	e := newTestEngine(t, nil)

	anchor, cands, err := e.Nearby("JFK", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "JFK", anchor.Code)
	assert.NotEmpty(t, cands, "zero radius and max fall back to the configured defaults")

	_, _, err = e.Nearby("ZZZ", 100, 5)
	assert.ErrorIs(t, err, airports.ErrNotFound)
}

// slowFareStore blocks until its context is cancelled, forcing every
// historical lookup to the deadline.
type slowFareStore struct{}

func (slowFareStore) AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (db.FareAggregate, error) {
	<-ctx.Done()
	return db.FareAggregate{}, ctx.Err()
}

func (slowFareStore) Close() error { return nil }

func TestRecommendDeadlinePartialResults(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	cfg.RequestDeadline = 50 * time.Millisecond
	cfg.HistoryLookupTimeout = time.Second // per-lookup timeout longer than the budget
	cfg.WorkerPoolSize = 1

	repo := airports.Default()
	e := New(repo, NewFareEstimator(slowFareStore{}, cfg), nil, nil, cfg)

	start := time.Now()
	rec, err := e.Recommend(context.Background(), Request{Origin: "JFK", Destination: "LAX", DateBucket: "2026-W40"})
	require.NoError(t, err, "hitting the deadline degrades the result, never errors")
	assert.Less(t, time.Since(start), time.Second, "the request deadline must bound the run")
	assert.True(t, rec.Baseline.IsBaseline, "the baseline survives even a fully timed-out run")
}
