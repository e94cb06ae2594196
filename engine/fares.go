package engine

import (
	"context"
	"errors"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/db"
	"github.com/fly2any/alt-airports-api/pkg/geo"
	"github.com/fly2any/alt-airports-api/pkg/logger"
	"golang.org/x/text/currency"
)

// FareEstimator prices a city pair for a date bucket and cabin. It tries the
// historical fare store first and falls back to a distance-banded heuristic
// model; the store being slow, failing, or absent never surfaces as an error.
type FareEstimator struct {
	history db.FareHistoryStore // may be nil
	cfg     config.EngineConfig
}

// NewFareEstimator creates a fare estimator. history may be nil, in which
// case every estimate comes from the heuristic tier.
func NewFareEstimator(history db.FareHistoryStore, cfg config.EngineConfig) *FareEstimator {
	return &FareEstimator{history: history, cfg: cfg}
}

// Estimate returns a price estimate for flying origin->destination in the
// given bucket and cabin. Confidence is "historical" when enough samples
// exist, "heuristic" for the model fallback, and "unavailable" when no
// positive price can be produced (e.g. origin == destination) — such
// estimates must be excluded from ranking.
func (f *FareEstimator) Estimate(ctx context.Context, origin, destination airports.Airport, dateBucket string, cabin Cabin) PriceEstimate {
	if origin.Code == destination.Code {
		return PriceEstimate{Confidence: ConfidenceUnavailable, DateBucket: dateBucket}
	}

	if est, ok := f.historical(ctx, origin, destination, dateBucket, cabin); ok {
		return est
	}
	return f.heuristic(origin, destination, dateBucket, cabin)
}

// historical queries the fare-history store under a per-call timeout.
// Timeouts and errors log and fall through to the heuristic tier.
func (f *FareEstimator) historical(ctx context.Context, origin, destination airports.Airport, dateBucket string, cabin Cabin) (PriceEstimate, bool) {
	if f.history == nil {
		return PriceEstimate{}, false
	}

	lookupCtx, cancel := context.WithTimeout(ctx, f.cfg.HistoryLookupTimeout)
	defer cancel()

	agg, err := f.history.AggregateFare(lookupCtx, origin.Code, destination.Code, dateBucket, string(cabin))
	if err != nil {
		if !errors.Is(err, db.ErrNoData) {
			logger.WithFields(map[string]interface{}{
				"origin":      origin.Code,
				"destination": destination.Code,
				"bucket":      dateBucket,
			}).Warn("Fare history lookup failed, falling back to heuristic", "error", err)
		}
		return PriceEstimate{}, false
	}
	if agg.SampleSize < f.cfg.MinHistorySamples || agg.Median <= 0 {
		return PriceEstimate{}, false
	}

	cur := agg.Currency
	if _, err := currency.ParseISO(cur); err != nil {
		cur = "USD"
	}
	return PriceEstimate{
		Amount:     agg.Median,
		Currency:   cur,
		Confidence: ConfidenceHistorical,
		DateBucket: dateBucket,
	}, true
}

// heuristic prices the route from great-circle distance. Per-km rates are
// banded by haul length (cost per km falls as fixed costs amortize over
// longer flights), then scaled by a cabin multiplier.
func (f *FareEstimator) heuristic(origin, destination airports.Airport, dateBucket string, cabin Cabin) PriceEstimate {
	dist := geo.DistanceKm(origin.Coordinates, destination.Coordinates)
	if dist <= 0 {
		return PriceEstimate{Confidence: ConfidenceUnavailable, DateBucket: dateBucket}
	}

	base := f.bandedPrice(dist)
	if base < f.cfg.MinimumFare {
		base = f.cfg.MinimumFare
	}

	price := base * f.cabinMultiplier(cabin)
	return PriceEstimate{
		Amount:     price,
		Currency:   "USD",
		Confidence: ConfidenceHeuristic,
		DateBucket: dateBucket,
	}
}

// bandedPrice integrates the per-km rate across haul bands so the estimate
// is continuous and strictly increasing in distance.
func (f *FareEstimator) bandedPrice(distKm float64) float64 {
	c := f.cfg
	switch {
	case distKm <= c.ShortHaulMaxKm:
		return distKm * c.ShortHaulPerKm
	case distKm <= c.MediumHaulMaxKm:
		return c.ShortHaulMaxKm*c.ShortHaulPerKm +
			(distKm-c.ShortHaulMaxKm)*c.MediumHaulPerKm
	default:
		return c.ShortHaulMaxKm*c.ShortHaulPerKm +
			(c.MediumHaulMaxKm-c.ShortHaulMaxKm)*c.MediumHaulPerKm +
			(distKm-c.MediumHaulMaxKm)*c.LongHaulPerKm
	}
}

func (f *FareEstimator) cabinMultiplier(cabin Cabin) float64 {
	switch cabin {
	case CabinPremiumEconomy:
		return f.cfg.CabinMultiplierPremium
	case CabinBusiness:
		return f.cfg.CabinMultiplierBusiness
	case CabinFirst:
		return f.cfg.CabinMultiplierFirst
	default:
		return 1.0
	}
}
