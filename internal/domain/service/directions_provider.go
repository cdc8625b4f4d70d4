package service

import (
	"context"

	"shopradar/internal/domain/entity"
)

// DirectionsProvider computes a route between two coordinates.
type DirectionsProvider interface {
	// Route returns the first route from origin to destination. It fails with
	// errors.ErrNoRoute when no route exists and errors.ErrNetworkFailure when the provider is unreachable.
	Route(ctx context.Context, origin, destination entity.Coordinate, profile entity.TravelProfile) (*entity.Route, error)

	// Name identifies the provider in logs.
	Name() string
}
