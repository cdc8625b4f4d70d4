package entity

import "github.com/paulmach/orb"

// TravelProfile is the directions travel mode.
type TravelProfile string

const (
	TravelProfileWalking TravelProfile = "walking"
	TravelProfileDriving TravelProfile = "driving"
)

// Valid reports whether the profile is supported.
func (p TravelProfile) Valid() bool {
	return p == TravelProfileWalking || p == TravelProfileDriving
}

// Route is a route returned by a directions provider.
type Route struct {
	Profile         TravelProfile  `json:"profile"`
	Geometry        orb.LineString `json:"-"`
	DistanceMeters  float64        `json:"distance_meters"`
	DurationSeconds float64        `json:"duration_seconds"`
}

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Point returns the coordinate as an orb point (lng, lat).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
