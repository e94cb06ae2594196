package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Known airport coordinates for testing
var (
	// JFK - New York John F. Kennedy International Airport
	JFK = Coordinates{Lat: 40.6413, Lon: -73.7781}
	// LAX - Los Angeles International Airport
	LAX = Coordinates{Lat: 33.9425, Lon: -118.4081}
	// LHR - London Heathrow Airport
	LHR = Coordinates{Lat: 51.4700, Lon: -0.4543}
	// SYD - Sydney Kingsford Smith Airport
	SYD = Coordinates{Lat: -33.9399, Lon: 151.1753}
	// EWR - Newark Liberty International Airport
	EWR = Coordinates{Lat: 40.6895, Lon: -74.1745}
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		from      Coordinates
		to        Coordinates
		expected  float64 // expected distance in kilometers
		tolerance float64 // acceptable error margin
	}{
		{
			name:      "JFK to LAX",
			from:      JFK,
			to:        LAX,
			expected:  3983, // approximately 3,983 km
			tolerance: 40,
		},
		{
			name:      "LHR to JFK",
			from:      LHR,
			to:        JFK,
			expected:  5539, // approximately 5,539 km
			tolerance: 40,
		},
		{
			name:      "LHR to SYD",
			from:      LHR,
			to:        SYD,
			expected:  17016, // approximately 17,016 km
			tolerance: 80,
		},
		{
			name:      "JFK to EWR",
			from:      JFK,
			to:        EWR,
			expected:  33, // same metro area, ~33 km
			tolerance: 3,
		},
		{
			name:      "Same location (JFK to JFK)",
			from:      JFK,
			to:        JFK,
			expected:  0,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := HaversineKm(tt.from.Lat, tt.from.Lon, tt.to.Lat, tt.to.Lon)
			diff := math.Abs(distance - tt.expected)
			assert.LessOrEqual(t, diff, tt.tolerance,
				"Distance %f should be within %f of %f", distance, tt.tolerance, tt.expected)
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	// Distance from A to B should equal distance from B to A
	distAB := HaversineKm(JFK.Lat, JFK.Lon, LAX.Lat, LAX.Lon)
	distBA := HaversineKm(LAX.Lat, LAX.Lon, JFK.Lat, JFK.Lon)

	assert.InDelta(t, distAB, distBA, 0.001, "Distance should be symmetric")
}

func TestHaversineKm_Identity(t *testing.T) {
	for _, c := range []Coordinates{JFK, LAX, LHR, SYD} {
		assert.InDelta(t, 0, HaversineKm(c.Lat, c.Lon, c.Lat, c.Lon), 1e-9)
	}
}

func TestCostPerKm(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		distance float64
		expected float64
	}{
		{
			name:     "Normal calculation",
			price:    400.0,
			distance: 4000.0,
			expected: 0.10, // $0.10 per km
		},
		{
			name:     "Zero distance",
			price:    400.0,
			distance: 0,
			expected: 0, // avoid division by zero
		},
		{
			name:     "Negative distance",
			price:    400.0,
			distance: -100,
			expected: 0, // avoid negative values
		},
		{
			name:     "Zero price",
			price:    0,
			distance: 4000.0,
			expected: 0, // free flight
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CostPerKm(tt.price, tt.distance)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestDistanceKm(t *testing.T) {
	distance := DistanceKm(JFK, LAX)
	directHaversine := HaversineKm(JFK.Lat, JFK.Lon, LAX.Lat, LAX.Lon)

	assert.Equal(t, directHaversine, distance, "DistanceKm should match HaversineKm")
}

func TestCoordinates_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		coords   Coordinates
		expected bool
	}{
		{"Valid JFK", JFK, true},
		{"Valid Sydney (negative lat)", SYD, true},
		{"Valid origin", Coordinates{0, 0}, true},
		{"Invalid latitude too high", Coordinates{91, 0}, false},
		{"Invalid latitude too low", Coordinates{-91, 0}, false},
		{"Invalid longitude too high", Coordinates{0, 181}, false},
		{"Invalid longitude too low", Coordinates{0, -181}, false},
		{"Edge case max lat", Coordinates{90, 0}, true},
		{"Edge case min lon", Coordinates{0, -180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coords.IsValid())
		})
	}
}

func TestCoordinates_IsZero(t *testing.T) {
	assert.True(t, Coordinates{0, 0}.IsZero())
	assert.False(t, JFK.IsZero())
	assert.False(t, Coordinates{0, 1}.IsZero())
}

func BenchmarkHaversineKm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HaversineKm(JFK.Lat, JFK.Lon, LAX.Lat, LAX.Lon)
	}
}
