// Package geo provides geodesic distance and distance formatting.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// PointDistanceMeters is DistanceMeters for orb points (lng, lat).
func PointDistanceMeters(p1, p2 orb.Point) float64 {
	return DistanceMeters(p1.Lat(), p1.Lon(), p2.Lat(), p2.Lon())
}

// BoundAround returns a bounding box containing every point within radiusMeters of (lat, lng).
// It is a cheap prefilter; callers still check DistanceMeters.
func BoundAround(lat, lng, radiusMeters float64) orb.Bound {
	// orb measures with the WGS84 equatorial radius, which is larger than ours.
	return orbgeo.NewBoundAroundPoint(orb.Point{lng, lat}, radiusMeters*boundPadding)
}

const boundPadding = 1.01

// LineLengthMeters sums the haversine length of every segment of ls.
func LineLengthMeters(ls orb.LineString) float64 {
	total := 0.0
	for i := 1; i < len(ls); i++ {
		total += PointDistanceMeters(ls[i-1], ls[i])
	}

	return total
}
