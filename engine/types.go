// Package engine implements the alternative airport recommendation engine:
// candidate discovery, fare and ground-transport estimation, and ranking.
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Cabin is a fare cabin class.
type Cabin string

const (
	CabinEconomy        Cabin = "economy"
	CabinPremiumEconomy Cabin = "premium_economy"
	CabinBusiness       Cabin = "business"
	CabinFirst          Cabin = "first"
)

// ParseCabin normalizes a cabin string. Empty defaults to economy.
func ParseCabin(s string) (Cabin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "economy":
		return CabinEconomy, nil
	case "premium_economy":
		return CabinPremiumEconomy, nil
	case "business":
		return CabinBusiness, nil
	case "first":
		return CabinFirst, nil
	default:
		return "", fmt.Errorf("unknown cabin class %q", s)
	}
}

// Confidence labels the data provenance of an estimate.
type Confidence string

const (
	ConfidenceUnavailable Confidence = "unavailable"
	ConfidenceHeuristic   Confidence = "heuristic"
	ConfidenceHistorical  Confidence = "historical"
	ConfidenceLive        Confidence = "live"
)

// Rank orders confidence tiers: live > historical > heuristic > unavailable.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceLive:
		return 3
	case ConfidenceHistorical:
		return 2
	case ConfidenceHeuristic:
		return 1
	default:
		return 0
	}
}

// DateBucket coarsens a travel date to an ISO year-week key so historical
// fares aggregate without exact-date matches.
func DateBucket(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseDateBucket accepts either an ISO week key ("2026-W14") or a date
// ("2026-04-03") and returns the normalized bucket.
func ParseDateBucket(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("date bucket is required")
	}
	var year, week int
	if n, err := fmt.Sscanf(strings.ToUpper(s), "%4d-W%2d", &year, &week); n == 2 && err == nil {
		if week < 1 || week > 53 {
			return "", fmt.Errorf("invalid ISO week %q", s)
		}
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date bucket %q (want 2006-01-02 or 2006-W01)", s)
	}
	return DateBucket(t), nil
}

// Route is the requested journey, constructed per request.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DateBucket  string `json:"date_bucket"`
	Cabin       Cabin  `json:"cabin"`
	Passengers  int    `json:"passengers"`
}

// Candidate is a substitute airport produced by the locator. DistanceKm is
// the straight-line distance from the anchor airport and is never negative.
type Candidate struct {
	Code       string  `json:"code"`
	DistanceKm float64 `json:"distance_km"`
	SameMetro  bool    `json:"same_metro"`
}

// PriceEstimate is a fare point estimate with its provenance. An estimate
// with confidence "unavailable" must not be used for ranking.
type PriceEstimate struct {
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	Confidence Confidence `json:"confidence"`
	DateBucket string     `json:"date_bucket"`
}

// Usable reports whether the estimate may participate in ranking.
func (p PriceEstimate) Usable() bool {
	return p.Confidence != ConfidenceUnavailable && p.Amount > 0
}

// TransportMode is the ground-transport mode chosen by distance band.
type TransportMode string

const (
	ModeTaxi    TransportMode = "taxi"
	ModeRail    TransportMode = "rail"
	ModeShuttle TransportMode = "shuttle"
)

// GroundTransportEstimate is a one-way ground leg estimate. Cost and
// duration are monotonically non-decreasing in distance. The model is a
// coarse heuristic and says so in its confidence field.
type GroundTransportEstimate struct {
	Cost            float64       `json:"cost"`
	DurationMinutes int           `json:"duration_minutes"`
	Mode            TransportMode `json:"mode"`
	Confidence      Confidence    `json:"confidence"`
}

// CandidateRoute is one ranked substitution option: the substituted airports
// on each side (the anchor itself when a side is not substituted), the fare
// estimate for the substituted city pair, round-trip ground transport, and
// the composite score against the baseline.
type CandidateRoute struct {
	Origin          Candidate               `json:"origin"`
	Destination     Candidate               `json:"destination"`
	Fare            PriceEstimate           `json:"fare"`
	OriginGround    GroundTransportEstimate `json:"origin_ground"`
	DestGround      GroundTransportEstimate `json:"dest_ground"`
	GroundCost      float64                 `json:"ground_cost"` // round trip, both sides
	TotalCost       float64                 `json:"total_cost"`
	NetSavings      float64                 `json:"net_savings"`
	AddedMinutes    int                     `json:"added_minutes"`
	Score           float64                 `json:"score"`
	IsBaseline      bool                    `json:"is_baseline"`
	Reason          string                  `json:"reason"`
}

// PairCode is a deterministic identity for tie-breaking and logging.
func (cr CandidateRoute) PairCode() string {
	return cr.Origin.Code + "-" + cr.Destination.Code
}

// Recommendation is the ordered result of a ranking run.
type Recommendation struct {
	Baseline     CandidateRoute   `json:"baseline"`
	Alternatives []CandidateRoute `json:"alternatives"`
	GeneratedAt  time.Time        `json:"generated_at"`
	CacheHit     bool             `json:"cache_hit"`
}
