// Package db provides the optional fare-history stores the engine consumes.
// A nil store is a valid configuration: the engine then prices everything
// with its heuristic model.
package db

import (
	"context"
	"errors"
)

// ErrNoData is returned when no aggregate exists for a city pair and bucket.
var ErrNoData = errors.New("no fare history for route")

// FareAggregate is the historical fare summary for a city-pair, date-bucket
// and cabin class.
type FareAggregate struct {
	Median     float64 `json:"median"`
	Mean       float64 `json:"mean"`
	SampleSize int     `json:"sample_size"`
	Currency   string  `json:"currency"`
}

// FareHistoryStore is the read-only price-history collaborator. It may be
// slow (network-backed) and may be absent entirely; callers own timeouts and
// fallbacks.
type FareHistoryStore interface {
	// AggregateFare returns the aggregated fares observed for the route in
	// the given date bucket (ISO year-week, e.g. "2026-W14") and cabin.
	// Returns ErrNoData when nothing was recorded.
	AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (FareAggregate, error)
	Close() error
}
