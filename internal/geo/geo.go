// Package geo provides the pure distance calculations used for privacy-zone
// containment, beacon visibility and proximity alerts.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the mean sphere radius used for great-circle distances.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two points via the
// haversine formula. Deterministic, no side effects.
func DistanceMeters(a, b orb.Point) float64 {
	latA := radians(a.Lat())
	latB := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLon := radians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// WithinMeters reports whether b lies within radius meters of a.
func WithinMeters(a, b orb.Point, radius float64) bool {
	return DistanceMeters(a, b) <= radius
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
