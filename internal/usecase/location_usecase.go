package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// LocationUsecase is the high-precision location sampler.
type LocationUsecase interface {
	// GetLocation returns the cached fix while it is fresh, otherwise samples the platform.
	// forceRefresh bypasses the cache. Overlapping calls share one sampling run.
	GetLocation(ctx context.Context, forceRefresh bool) (*entity.LocationFix, error)

	// State returns a snapshot of the sampler status.
	State() entity.LocationState
}
