package engine

import (
	"math"

	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/pkg/geo"
)

// GroundEstimator models the cost and time of reaching a substitute airport
// from the traveler's true endpoint. It is deliberately coarse — distance
// bands pick a mode, each mode has a fixed cost, a per-km cost and an
// assumed average speed — and labels its output heuristic accordingly. It
// never calls a live routing API.
type GroundEstimator struct {
	cfg config.EngineConfig
}

// NewGroundEstimator creates a ground transport estimator.
func NewGroundEstimator(cfg config.EngineConfig) *GroundEstimator {
	return &GroundEstimator{cfg: cfg}
}

// Estimate returns the one-way estimate between two points.
func (g *GroundEstimator) Estimate(from, to geo.Coordinates) GroundTransportEstimate {
	return g.EstimateKm(geo.DistanceKm(from, to), true)
}

// EstimateKm estimates a ground leg of the given length. railAvailable
// marks whether the destination area has a rail link; without one the
// middle band falls back to taxi and the far band to shuttle.
//
// Cost and duration are monotonically non-decreasing in distance: where a
// cheaper or faster mode takes over at a band boundary, its curve is floored
// at the previous band's value at that boundary.
func (g *GroundEstimator) EstimateKm(distKm float64, railAvailable bool) GroundTransportEstimate {
	c := g.cfg
	if distKm < 0 {
		distKm = 0
	}

	var mode TransportMode
	switch {
	case distKm < c.TaxiMaxKm:
		mode = ModeTaxi
	case distKm < c.RailMaxKm:
		mode = ModeRail
	default:
		mode = ModeShuttle
	}
	if mode == ModeRail && !railAvailable {
		mode = ModeTaxi
	}
	if mode == ModeShuttle && railAvailable {
		// Long approaches keep rail where the area has a link; shuttle is
		// the fallback for areas without one.
		mode = ModeRail
	}

	cost, minutes := g.curve(mode, distKm)

	// Carry band-boundary floors forward so switching to a cheaper or
	// faster mode never makes a longer trip look better.
	if distKm >= c.TaxiMaxKm {
		floorCost, floorMin := g.curve(ModeTaxi, c.TaxiMaxKm)
		cost = math.Max(cost, floorCost)
		minutes = math.Max(minutes, floorMin)
	}
	if distKm >= c.RailMaxKm {
		prev := ModeRail
		if !railAvailable {
			prev = ModeTaxi
		}
		floorCost, floorMin := g.curve(prev, c.RailMaxKm)
		cost = math.Max(cost, floorCost)
		minutes = math.Max(minutes, floorMin)
	}

	return GroundTransportEstimate{
		Cost:            cost,
		DurationMinutes: int(math.Ceil(minutes)),
		Mode:            mode,
		Confidence:      ConfidenceHeuristic,
	}
}

// curve evaluates a mode's raw cost and duration at a distance.
func (g *GroundEstimator) curve(mode TransportMode, distKm float64) (cost, minutes float64) {
	c := g.cfg
	var base, perKm, speed float64
	switch mode {
	case ModeTaxi:
		base, perKm, speed = c.TaxiBaseCost, c.TaxiPerKm, c.TaxiSpeedKmh
	case ModeRail:
		base, perKm, speed = c.RailBaseCost, c.RailPerKm, c.RailSpeedKmh
	default:
		base, perKm, speed = c.ShuttleBaseCost, c.ShuttlePerKm, c.ShuttleSpeedKmh
	}
	cost = base + distKm*perKm
	if speed > 0 {
		minutes = distKm / speed * 60
	}
	return cost, minutes
}
