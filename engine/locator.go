package engine

import (
	"sort"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/pkg/geo"
)

// Locator discovers substitute airports around an anchor.
type Locator struct {
	repo *airports.Repository
}

// NewLocator creates a candidate locator over the airport reference set.
func NewLocator(repo *airports.Repository) *Locator {
	return &Locator{repo: repo}
}

// FindCandidates returns airports within radiusKm of the anchor, plus any
// airport sharing the anchor's metro group regardless of distance (metro
// groupings are curated and override the radius). The anchor itself is
// excluded. Results are sorted ascending by distance and truncated to
// maxResults. radiusKm <= 0 restricts the search to the metro group; an
// empty result is a valid outcome, not an error.
func (l *Locator) FindCandidates(anchor airports.Airport, radiusKm float64, maxResults int) []Candidate {
	if maxResults <= 0 {
		return nil
	}

	var out []Candidate
	for _, a := range l.repo.All() {
		if a.Code == anchor.Code {
			continue
		}
		sameMetro := anchor.Metro != "" && a.Metro == anchor.Metro
		dist := geo.DistanceKm(anchor.Coordinates, a.Coordinates)
		if !sameMetro && (radiusKm <= 0 || dist > radiusKm) {
			continue
		}
		out = append(out, Candidate{
			Code:       a.Code,
			DistanceKm: dist,
			SameMetro:  sameMetro,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Code < out[j].Code
	})

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
