// Package geo provides the coordinate and distance primitives used by the
// proximity engine: haversine distance in miles, validation, and an
// explicit "unavailable" distance state for when the caller has no origin.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	earthRadiusKm = 6371.0
	milesPerKm    = 0.621371
	metersPerMile = 1609.344
)

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether both components are finite and within the
// geographic range (-90..90 latitude, -180..180 longitude).
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point returns the position as an orb point (lon/lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// BoundAround returns a bounding box covering radiusMiles around the
// position. Used as a cheap prefilter before exact distance ranking.
func (c Coordinates) BoundAround(radiusMiles float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(c.Point(), radiusMiles*metersPerMile)
}

// DistanceMiles computes the great-circle distance in miles between two
// coordinates using the haversine formula on a spherical Earth. Callers
// must validate coordinates first; non-finite inputs are undefined.
func DistanceMiles(origin, target Coordinates) float64 {
	latOrigin := origin.Lat * math.Pi / 180
	lonOrigin := origin.Lon * math.Pi / 180
	latTarget := target.Lat * math.Pi / 180
	lonTarget := target.Lon * math.Pi / 180

	deltaLat := latTarget - latOrigin
	deltaLon := lonTarget - lonOrigin

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latOrigin)*math.Cos(latTarget)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * milesPerKm
}

// Distance is the proximity annotation attached to a restroom. When the
// origin position is unknown (location permission denied upstream) the
// distance is marked unavailable rather than reported as zero.
type Distance struct {
	Miles     float64 `json:"miles"`
	Available bool    `json:"available"`
}

// Unavailable returns the explicit no-location distance state.
func Unavailable() Distance {
	return Distance{}
}

// MilesBetween annotates the distance from an optional origin to a
// target. A nil or invalid origin yields the unavailable state.
func MilesBetween(origin *Coordinates, target Coordinates) Distance {
	if origin == nil || !origin.Valid() || !target.Valid() {
		return Unavailable()
	}

	return Distance{
		Miles:     DistanceMiles(*origin, target),
		Available: true,
	}
}

// String renders the distance the way listings display it, one decimal
// place with a unit label.
func (d Distance) String() string {
	if !d.Available {
		return "Distance unavailable"
	}

	return fmt.Sprintf("%.1f miles away", d.Miles)
}
