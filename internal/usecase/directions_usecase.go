package usecase

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// DirectionsInput is a directions request. A nil Origin uses the current fix.
type DirectionsInput struct {
	Origin      *entity.Coordinate   `json:"origin,omitempty"`
	Destination entity.Coordinate    `json:"destination" validate:"required"`
	Profile     entity.TravelProfile `json:"profile" validate:"omitempty,oneof=walking driving"`
}

// DirectionsResult is a route ready for display.
type DirectionsResult struct {
	Profile           entity.TravelProfile `json:"profile"`
	Provider          string               `json:"provider"`
	Geometry          *geojson.Geometry    `json:"geometry"`
	DistanceMeters    float64              `json:"distance_meters"`
	DurationSeconds   float64              `json:"duration_seconds"`
	FormattedDistance string               `json:"formatted_distance"`
	FormattedDuration string               `json:"formatted_duration"`
}

// DirectionsUsecase computes routes to stores.
type DirectionsUsecase interface {
	GetDirections(ctx context.Context, input *DirectionsInput) (*DirectionsResult, error)
}
