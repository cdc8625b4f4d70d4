// Package directions selects the configured route provider.
package directions

import (
	"context"
	"log/slog"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	"shopradar/internal/infra/directions/mapbox"
	"shopradar/internal/infra/directions/pmtiles"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for DirectionsProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// unavailableProvider answers every route request with ErrDirectionsUnavailable.
type unavailableProvider struct{}

func (unavailableProvider) Route(context.Context, entity.Coordinate, entity.Coordinate, entity.TravelProfile) (*entity.Route, error) {
	return nil, domainerrors.ErrDirectionsUnavailable
}

func (unavailableProvider) Name() string {
	return "unavailable"
}

// NewDirectionsProvider creates the DirectionsProvider named by directions.provider.
// Mapbox is used when no provider is configured. A provider missing its token or
// tile source leaves directions disabled instead of failing startup.
func NewDirectionsProvider(params ProviderParams) (service.DirectionsProvider, error) {
	cfg := params.Config.Directions
	if cfg == nil {
		cfg = &config.DirectionsConfig{}
	}

	switch cfg.Provider {
	case "", constants.DirectionsProviderMapbox:
		if cfg.Mapbox == nil || cfg.Mapbox.AccessToken == "" {
			params.Logger.Warn("Mapbox access token not configured, directions disabled")

			return unavailableProvider{}, nil
		}

		return mapbox.NewClient(cfg.Mapbox, params.Logger)
	case constants.DirectionsProviderPMTiles:
		if cfg.PMTiles == nil || cfg.PMTiles.Source == "" {
			params.Logger.Warn("PMTiles source not configured, directions disabled")

			return unavailableProvider{}, nil
		}

		return pmtiles.NewRouterFromConfig(cfg.PMTiles, params.Logger)
	default:
		return nil, errors.Errorf("unknown directions provider: %s", cfg.Provider)
	}
}

// Module provides the directions FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDirectionsProvider),
)
