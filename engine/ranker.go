package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/fly2any/alt-airports-api/config"
)

// NoAlternativesReason annotates a baseline-only recommendation.
const NoAlternativesReason = "No viable alternative airports found within the given radius."

// evaluatedPair is one candidate substitution with its estimates gathered.
// Sides that were not substituted carry the anchor itself as the candidate
// and a zero ground estimate.
type evaluatedPair struct {
	origin       Candidate
	destination  Candidate
	fare         PriceEstimate
	originGround GroundTransportEstimate
	destGround   GroundTransportEstimate
}

// Ranker turns gathered estimates into an ordered recommendation. Ranking
// is a pure post-processing step over the complete evaluated set, so the
// result is deterministic regardless of the order pairs were evaluated in.
type Ranker struct {
	cfg config.EngineConfig
}

// NewRanker creates a ranker.
func NewRanker(cfg config.EngineConfig) *Ranker {
	return &Ranker{cfg: cfg}
}

// Rank scores every evaluated pair against the baseline and orders the
// survivors. The baseline is always retained; substitutes whose composite
// score is not positive are dropped. Tie-breaks, in order: higher fare
// confidence, lower added time, lexicographic airport pair.
func (r *Ranker) Rank(baseline evaluatedPair, pairs []evaluatedPair) Recommendation {
	baselineRoute := r.buildBaseline(baseline)

	var alts []CandidateRoute
	for _, p := range pairs {
		if !p.fare.Usable() {
			continue
		}
		cr := r.buildCandidate(p, baselineRoute.TotalCost)
		if cr.Score <= 0 {
			continue
		}
		alts = append(alts, cr)
	}

	sort.Slice(alts, func(i, j int) bool {
		a, b := alts[i], alts[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Fare.Confidence.Rank() != b.Fare.Confidence.Rank() {
			return a.Fare.Confidence.Rank() > b.Fare.Confidence.Rank()
		}
		if a.AddedMinutes != b.AddedMinutes {
			return a.AddedMinutes < b.AddedMinutes
		}
		return a.PairCode() < b.PairCode()
	})

	if len(alts) == 0 {
		baselineRoute.Reason = NoAlternativesReason
	}

	return Recommendation{
		Baseline:     baselineRoute,
		Alternatives: alts,
		GeneratedAt:  time.Now().UTC(),
	}
}

func (r *Ranker) buildBaseline(p evaluatedPair) CandidateRoute {
	return CandidateRoute{
		Origin:      p.origin,
		Destination: p.destination,
		Fare:        p.fare,
		TotalCost:   p.fare.Amount,
		IsBaseline:  true,
		Reason:      "Originally requested route",
	}
}

// buildCandidate computes the money and time deltas for one substitution.
// Total cost is the fare plus a round trip of ground transport on each
// substituted side; added time is the round-trip ground duration converted
// to a dollar penalty through the value-of-time weight.
func (r *Ranker) buildCandidate(p evaluatedPair, baselineTotal float64) CandidateRoute {
	groundCost := 2*p.originGround.Cost + 2*p.destGround.Cost
	addedMinutes := 2*p.originGround.DurationMinutes + 2*p.destGround.DurationMinutes

	totalCost := p.fare.Amount + groundCost
	netSavings := baselineTotal - totalCost
	score := netSavings - r.cfg.TimePenaltyPerMinute*float64(addedMinutes)

	cr := CandidateRoute{
		Origin:       p.origin,
		Destination:  p.destination,
		Fare:         p.fare,
		OriginGround: p.originGround,
		DestGround:   p.destGround,
		GroundCost:   groundCost,
		TotalCost:    totalCost,
		NetSavings:   netSavings,
		AddedMinutes: addedMinutes,
		Score:        score,
	}
	cr.Reason = r.reason(cr)
	return cr
}

// reason renders a human-readable explanation for one candidate route.
func (r *Ranker) reason(cr CandidateRoute) string {
	via := cr.Origin.Code
	ground := cr.OriginGround
	if cr.DestGround.Cost > 0 && (cr.OriginGround.Cost == 0 || cr.DestGround.Cost > cr.OriginGround.Cost) {
		via = cr.Destination.Code
		ground = cr.DestGround
	}

	travel := "drive"
	switch ground.Mode {
	case ModeRail:
		travel = "train ride"
	case ModeShuttle:
		travel = "shuttle ride"
	}

	if cr.NetSavings > 0 {
		return fmt.Sprintf("Save $%.0f flying via %s, %d min extra %s",
			cr.NetSavings, via, cr.AddedMinutes, travel)
	}
	return fmt.Sprintf("Flying via %s adds $%.0f and %d min of %s",
		via, -cr.NetSavings, cr.AddedMinutes, travel)
}
