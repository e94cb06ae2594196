// Package airports holds the static airport reference set and the read-only
// repository the recommendation engine queries at request time.
package airports

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fly2any/alt-airports-api/pkg/geo"
	"github.com/fly2any/alt-airports-api/pkg/logger"
)

// ErrNotFound is returned when an IATA code is not in the reference set.
var ErrNotFound = errors.New("airport not found")

// Airport is an immutable reference entity. Records are created once at
// process start and never mutated afterwards.
type Airport struct {
	Code        string          `json:"code"`           // IATA, unique key
	ICAO        string          `json:"icao,omitempty"` // optional
	Name        string          `json:"name"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Continent   string          `json:"continent"`
	Timezone    string          `json:"timezone"`
	Coordinates geo.Coordinates `json:"coordinates"`
	Metro       string          `json:"metro,omitempty"` // metro-area grouping key, optional
	Hub         bool            `json:"hub"`
	Popularity  int             `json:"popularity"` // annual passengers, millions, rounded
	Keywords    []string        `json:"keywords,omitempty"`
}

// Repository provides read-only access to the airport reference set.
// Indexes are built once at load time; lookups are O(1). The maps are never
// written after New returns, so a Repository is safe for concurrent use.
type Repository struct {
	byCode  map[string]Airport
	byMetro map[string][]Airport
	all     []Airport
}

// New builds a repository from the given records. Malformed entries (missing
// code, out-of-range coordinates) are skipped with a warning rather than
// failing the load.
func New(records []Airport) *Repository {
	r := &Repository{
		byCode:  make(map[string]Airport, len(records)),
		byMetro: make(map[string][]Airport),
	}

	for _, a := range records {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		if len(a.Code) != 3 {
			logger.WithField("code", a.Code).Warn("Skipping airport with malformed IATA code")
			continue
		}
		if !a.Coordinates.IsValid() || a.Coordinates.IsZero() {
			logger.WithField("code", a.Code).Warn("Skipping airport with invalid coordinates")
			continue
		}
		if _, dup := r.byCode[a.Code]; dup {
			logger.WithField("code", a.Code).Warn("Skipping duplicate airport entry")
			continue
		}

		r.byCode[a.Code] = a
		r.all = append(r.all, a)
		if a.Metro != "" {
			r.byMetro[a.Metro] = append(r.byMetro[a.Metro], a)
		}
	}

	sort.Slice(r.all, func(i, j int) bool { return r.all[i].Code < r.all[j].Code })
	for _, group := range r.byMetro {
		sort.Slice(group, func(i, j int) bool { return group[i].Code < group[j].Code })
	}

	logger.Info("Airport reference set loaded",
		"airports", len(r.all), "metro_groups", len(r.byMetro))
	return r
}

// Default builds a repository from the embedded reference dataset.
func Default() *Repository {
	return New(referenceSet)
}

// FindByCode looks up a single airport by IATA code.
func (r *Repository) FindByCode(code string) (Airport, error) {
	a, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, fmt.Errorf("%q: %w", code, ErrNotFound)
	}
	return a, nil
}

// All returns every airport in the reference set, sorted by code.
// The returned slice is a copy and may be iterated any number of times.
func (r *Repository) All() []Airport {
	out := make([]Airport, len(r.all))
	copy(out, r.all)
	return out
}

// ByMetro returns the airports sharing a metro-area grouping key, sorted by
// code. Unknown metro codes yield an empty slice.
func (r *Repository) ByMetro(metro string) []Airport {
	group := r.byMetro[metro]
	out := make([]Airport, len(group))
	copy(out, group)
	return out
}

// Len reports the number of airports loaded.
func (r *Repository) Len() int {
	return len(r.all)
}
