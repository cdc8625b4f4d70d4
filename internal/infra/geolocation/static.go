package geolocation

import (
	"context"

	"shopradar/config"
	"shopradar/internal/domain/entity"

	"github.com/benbjohnson/clock"
)

// Static always reports the configured position. It stands in for a device in development.
type Static struct {
	position config.StaticLocationConfig
	clock    clock.Clock
}

// NewStatic creates a static position source.
func NewStatic(position config.StaticLocationConfig, clk clock.Clock) *Static {
	return &Static{position: position, clock: clk}
}

func (s *Static) Available() bool {
	return true
}

func (s *Static) CurrentPosition(ctx context.Context) (*entity.LocationFix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &entity.LocationFix{
		Lat:            s.position.Lat,
		Lng:            s.position.Lng,
		AccuracyMeters: s.position.Accuracy,
		TimestampMs:    s.clock.Now().UnixMilli(),
	}, nil
}
