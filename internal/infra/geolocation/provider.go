package geolocation

import (
	"log/slog"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for PositionProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Bridge *Bridge
	Clock  clock.Clock
	Logger *slog.Logger
}

// NewPositionProvider returns the position source named by location.provider.
// The bridge is used when none is configured.
func NewPositionProvider(params ProviderParams) (service.PositionProvider, error) {
	cfg := params.Config.Location
	provider := ""
	if cfg != nil {
		provider = cfg.Provider
	}

	switch provider {
	case "", constants.LocationProviderBridge:
		params.Logger.Info("Using native bridge position source")

		return params.Bridge, nil
	case constants.LocationProviderStatic:
		if cfg.Static == nil {
			return nil, errors.New("static position is required for static location provider")
		}
		params.Logger.Info("Using static position source",
			slog.Float64("lat", cfg.Static.Lat),
			slog.Float64("lng", cfg.Static.Lng),
		)

		return NewStatic(*cfg.Static, params.Clock), nil
	default:
		return nil, errors.Errorf("unknown location provider: %s", provider)
	}
}

// Module provides the position sources
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBridge,
		NewPositionProvider,
	),
)
