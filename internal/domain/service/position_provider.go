package service

import (
	"context"

	"shopradar/internal/domain/entity"
)

// PositionProvider is the platform position source (the device geolocation API).
type PositionProvider interface {
	// Available reports whether the device has a position capability at all.
	Available() bool

	// CurrentPosition returns one fresh high-accuracy reading. It fails with
	// *errors.PositionError when the platform reports a failure, and honours ctx for timeouts.
	CurrentPosition(ctx context.Context) (*entity.LocationFix, error)
}
