package airports

import (
	"errors"
	"testing"

	"github.com/fly2any/alt-airports-api/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SkipsMalformedEntries(t *testing.T) {
	records := []Airport{
		{Code: "JFK", Coordinates: geo.Coordinates{Lat: 40.6413, Lon: -73.7781}},
		{Code: "", Coordinates: geo.Coordinates{Lat: 10, Lon: 10}},          // missing code
		{Code: "TOOLONG", Coordinates: geo.Coordinates{Lat: 10, Lon: 10}},   // malformed code
		{Code: "BAD", Coordinates: geo.Coordinates{Lat: 120, Lon: 10}},      // invalid latitude
		{Code: "ZRO", Coordinates: geo.Coordinates{}},                       // unset coordinates
		{Code: "JFK", Coordinates: geo.Coordinates{Lat: 40.64, Lon: -73.7}}, // duplicate
	}

	repo := New(records)
	assert.Equal(t, 1, repo.Len())

	_, err := repo.FindByCode("BAD")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCode(t *testing.T) {
	repo := Default()

	jfk, err := repo.FindByCode("JFK")
	require.NoError(t, err)
	assert.Equal(t, "New York", jfk.City)
	assert.Equal(t, "NYC", jfk.Metro)
	assert.True(t, jfk.Hub)

	// Lookup is case-insensitive and trims whitespace
	lax, err := repo.FindByCode(" lax ")
	require.NoError(t, err)
	assert.Equal(t, "LAX", lax.Code)

	_, err = repo.FindByCode("XXX")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestByMetro(t *testing.T) {
	repo := Default()

	nyc := repo.ByMetro("NYC")
	codes := make([]string, 0, len(nyc))
	for _, a := range nyc {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, "JFK")
	assert.Contains(t, codes, "LGA")
	assert.Contains(t, codes, "EWR")

	assert.Empty(t, repo.ByMetro("NOPE"))
}

func TestAll_RestartableCopy(t *testing.T) {
	repo := Default()

	first := repo.All()
	require.NotEmpty(t, first)

	// Mutating the returned slice must not affect the repository.
	first[0].Code = "ZZZ"
	second := repo.All()
	assert.NotEqual(t, "ZZZ", second[0].Code)
	assert.Equal(t, len(first), len(second))
}

func TestDefault_DatasetIntegrity(t *testing.T) {
	repo := Default()

	// Every record in the embedded dataset should survive loading.
	assert.Equal(t, len(referenceSet), repo.Len())

	for _, a := range repo.All() {
		assert.Len(t, a.Code, 3)
		assert.True(t, a.Coordinates.IsValid(), "invalid coordinates for %s", a.Code)
		assert.NotEmpty(t, a.Timezone, "missing timezone for %s", a.Code)
	}

	// Metro groups referenced by more than one airport.
	for _, metro := range []string{"NYC", "QLA", "QSF", "CHI", "WAS", "QMI", "LON", "PAR", "SAO"} {
		assert.GreaterOrEqual(t, len(repo.ByMetro(metro)), 2, "metro group %s", metro)
	}
}
