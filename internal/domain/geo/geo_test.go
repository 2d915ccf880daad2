package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinates_Valid(t *testing.T) {
	valid := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 37.4275, Lon: -122.1697},
		{Lat: -90, Lon: -180},
		{Lat: 90, Lon: 180},
	}
	for _, c := range valid {
		assert.True(t, c.Valid(), "expected %+v to be valid", c)
	}

	invalid := []Coordinates{
		{Lat: 90.1, Lon: 0},
		{Lat: -90.1, Lon: 0},
		{Lat: 0, Lon: 180.1},
		{Lat: 0, Lon: -180.1},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
	}
	for _, c := range invalid {
		assert.False(t, c.Valid(), "expected %+v to be invalid", c)
	}
}

func TestDistanceMiles_ZeroForSamePoint(t *testing.T) {
	origin := Coordinates{Lat: 37.4275, Lon: -122.1697}

	assert.InDelta(t, 0, DistanceMiles(origin, origin), 1e-9)
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := Coordinates{Lat: 37.4275, Lon: -122.1697}
	b := Coordinates{Lat: 37.7749, Lon: -122.4194}

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestDistanceMiles_ShortHop(t *testing.T) {
	origin := Coordinates{Lat: 37.4275, Lon: -122.1697}
	target := Coordinates{Lat: origin.Lat + 0.01, Lon: origin.Lon}

	// One hundredth of a degree of latitude is roughly 0.69 miles.
	distance := DistanceMiles(origin, target)
	assert.Greater(t, distance, 0.0)
	assert.Less(t, distance, 2.0)
}

func TestMilesBetween_NilOrigin(t *testing.T) {
	target := Coordinates{Lat: 37.4275, Lon: -122.1697}

	distance := MilesBetween(nil, target)
	assert.False(t, distance.Available)
	assert.Equal(t, "Distance unavailable", distance.String())
}

func TestMilesBetween_InvalidOrigin(t *testing.T) {
	origin := Coordinates{Lat: 91, Lon: 0}
	target := Coordinates{Lat: 37.4275, Lon: -122.1697}

	assert.False(t, MilesBetween(&origin, target).Available)
}

func TestMilesBetween_Available(t *testing.T) {
	origin := Coordinates{Lat: 37.4275, Lon: -122.1697}
	target := Coordinates{Lat: origin.Lat + 0.01, Lon: origin.Lon}

	distance := MilesBetween(&origin, target)
	assert.True(t, distance.Available)
	assert.Greater(t, distance.Miles, 0.0)
}

func TestDistance_String(t *testing.T) {
	assert.Equal(t, "0.7 miles away", Distance{Miles: 0.69, Available: true}.String())
	assert.Equal(t, "12.0 miles away", Distance{Miles: 12.04, Available: true}.String())
}

func TestBoundAround_ContainsOrigin(t *testing.T) {
	origin := Coordinates{Lat: 37.4275, Lon: -122.1697}

	bound := origin.BoundAround(2)
	assert.True(t, bound.Contains(origin.Point()))
	assert.Less(t, bound.Min[1], origin.Lat)
	assert.Greater(t, bound.Max[1], origin.Lat)
	assert.Less(t, bound.Min[0], origin.Lon)
	assert.Greater(t, bound.Max[0], origin.Lon)
}
