package impl

import (
	"context"
	"log/slog"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	"shopradar/internal/geo"
	"shopradar/internal/usecase"
	"shopradar/internal/util"

	"github.com/paulmach/orb/geojson"
)

type directionsService struct {
	provider service.DirectionsProvider
	location usecase.LocationUsecase
	logger   *slog.Logger
}

// NewDirectionsService creates the directions service.
func NewDirectionsService(provider service.DirectionsProvider, location usecase.LocationUsecase, logger *slog.Logger) usecase.DirectionsUsecase {
	return &directionsService{
		provider: provider,
		location: location,
		logger:   logger,
	}
}

// GetDirections returns the first route to the destination, starting at the current fix
// unless an origin is given.
func (s *directionsService) GetDirections(ctx context.Context, input *usecase.DirectionsInput) (*usecase.DirectionsResult, error) {
	profile := input.Profile
	if profile == "" {
		profile = entity.TravelProfileWalking
	}
	if !profile.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile must be walking or driving")
	}

	var origin entity.Coordinate
	if input.Origin != nil {
		origin = *input.Origin
	} else {
		fix, err := s.location.GetLocation(ctx, false)
		if err != nil {
			return nil, err
		}
		origin = entity.Coordinate{Lat: fix.Lat, Lng: fix.Lng}
	}

	route, err := s.provider.Route(ctx, origin, input.Destination, profile)
	if err != nil {
		s.logger.Warn("[Directions] route request failed",
			slog.String("provider", s.provider.Name()),
			slog.String("profile", string(profile)),
			slog.Any("error", err),
		)

		return nil, classifyDirectionsError(err)
	}
	if route == nil || len(route.Geometry) < 2 {
		return nil, domainerrors.ErrNoRoute
	}

	duration := time.Duration(route.DurationSeconds * float64(time.Second))

	return &usecase.DirectionsResult{
		Profile:           profile,
		Provider:          s.provider.Name(),
		Geometry:          geojson.NewGeometry(route.Geometry),
		DistanceMeters:    route.DistanceMeters,
		DurationSeconds:   route.DurationSeconds,
		FormattedDistance: geo.FormatDistance(route.DistanceMeters),
		FormattedDuration: util.FormatDuration(duration),
	}, nil
}

func classifyDirectionsError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrTimeout
	}

	return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
}
