package engine

import (
	"context"
	"testing"
	"time"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/db"
	"github.com/fly2any/alt-airports-api/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFareStore is a scripted FareHistoryStore for tests.
type fakeFareStore struct {
	agg   db.FareAggregate
	err   error
	delay time.Duration
	calls int
}

func (f *fakeFareStore) AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (db.FareAggregate, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return db.FareAggregate{}, ctx.Err()
		}
	}
	if f.err != nil {
		return db.FareAggregate{}, f.err
	}
	return f.agg, nil
}

func (f *fakeFareStore) Close() error { return nil }

func testAirports(t *testing.T, codes ...string) []airports.Airport {
	t.Helper()
	repo := airports.Default()
	out := make([]airports.Airport, len(codes))
	for i, code := range codes {
		a, err := repo.FindByCode(code)
		require.NoError(t, err)
		out[i] = a
	}
	return out
}

func TestEstimateHistoricalTier(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	store := &fakeFareStore{agg: db.FareAggregate{Median: 312.50, SampleSize: 40, Currency: "USD"}}
	est := NewFareEstimator(store, cfg)

	ap := testAirports(t, "JFK", "LAX")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)

	assert.Equal(t, ConfidenceHistorical, got.Confidence)
	assert.Equal(t, 312.50, got.Amount)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "2026-W40", got.DateBucket)
}

func TestEstimateFallsBackOnThinSamples(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	store := &fakeFareStore{agg: db.FareAggregate{Median: 300, SampleSize: cfg.MinHistorySamples - 1, Currency: "USD"}}
	est := NewFareEstimator(store, cfg)

	ap := testAirports(t, "JFK", "LAX")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)

	assert.Equal(t, ConfidenceHeuristic, got.Confidence)
	assert.Equal(t, 1, store.calls)
}

func TestEstimateFallsBackOnNoData(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	store := &fakeFareStore{err: db.ErrNoData}
	est := NewFareEstimator(store, cfg)

	ap := testAirports(t, "GRU", "MIA")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)
	assert.Equal(t, ConfidenceHeuristic, got.Confidence)
	assert.Positive(t, got.Amount)
}

func TestEstimateFallsBackOnSlowStore(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	cfg.HistoryLookupTimeout = 20 * time.Millisecond
	store := &fakeFareStore{
		agg:   db.FareAggregate{Median: 300, SampleSize: 50, Currency: "USD"},
		delay: 500 * time.Millisecond,
	}
	est := NewFareEstimator(store, cfg)

	ap := testAirports(t, "JFK", "LAX")
	start := time.Now()
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)

	assert.Equal(t, ConfidenceHeuristic, got.Confidence, "a slow store degrades, never errors")
	assert.Less(t, time.Since(start), 300*time.Millisecond, "the lookup timeout must bound the wait")
}

func TestEstimateNilStoreIsHeuristicOnly(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)

	ap := testAirports(t, "LHR", "JFK")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)
	assert.Equal(t, ConfidenceHeuristic, got.Confidence)
	assert.Positive(t, got.Amount)
}

func TestEstimateSameAirportUnavailable(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)

	ap := testAirports(t, "JFK")
	got := est.Estimate(context.Background(), ap[0], ap[0], "2026-W40", CabinEconomy)
	assert.Equal(t, ConfidenceUnavailable, got.Confidence)
	assert.False(t, got.Usable())
}

func TestHeuristicMonotonicInDistance(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)

	// Spans all three haul bands.
	distances := []float64{100, 500, 799, 801, 2000, 3499, 3501, 8000, 17000}
	prev := 0.0
	for _, d := range distances {
		price := est.bandedPrice(d)
		assert.Greater(t, price, prev, "fare at %.0fkm must exceed fare at shorter distance", d)
		prev = price
	}
}

func TestHeuristicPerKmRateFallsWithDistance(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)

	// Fixed costs amortize: a long-haul fare is cheaper per km than a
	// medium-haul one, which is cheaper per km than short-haul.
	short := geo.CostPerKm(est.bandedPrice(500), 500)
	medium := geo.CostPerKm(est.bandedPrice(2000), 2000)
	long := geo.CostPerKm(est.bandedPrice(8000), 8000)
	assert.Greater(t, short, medium)
	assert.Greater(t, medium, long)
}

func TestHeuristicCabinOrdering(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)
	ap := testAirports(t, "JFK", "LHR")

	var prev float64
	for _, cabin := range []Cabin{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst} {
		got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", cabin)
		require.True(t, got.Usable())
		assert.Greater(t, got.Amount, prev, "cabin %s must cost more than the previous class", cabin)
		prev = got.Amount
	}
}

func TestHeuristicMinimumFareFloor(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	est := NewFareEstimator(nil, cfg)

	// JFK-EWR is ~33km; the raw banded price sits under the floor.
	ap := testAirports(t, "JFK", "EWR")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)
	assert.Equal(t, cfg.MinimumFare, got.Amount)
}

func TestEstimateBadCurrencyFallsBackToUSD(t *testing.T) {
	cfg := config.TestConfig().EngineConfig
	store := &fakeFareStore{agg: db.FareAggregate{Median: 250, SampleSize: 30, Currency: "??"}}
	est := NewFareEstimator(store, cfg)

	ap := testAirports(t, "JFK", "LAX")
	got := est.Estimate(context.Background(), ap[0], ap[1], "2026-W40", CabinEconomy)
	assert.Equal(t, "USD", got.Currency)
}
