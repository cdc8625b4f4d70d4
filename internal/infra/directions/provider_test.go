package directions

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectionsProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         *config.DirectionsConfig
		wantName    string
		wantErr     bool
		unavailable bool
	}{
		{
			name:        "mapbox without token is disabled",
			cfg:         &config.DirectionsConfig{Provider: "mapbox", Mapbox: &config.MapboxConfig{BaseURL: "https://api.mapbox.com"}},
			unavailable: true,
		},
		{
			name:        "no directions section is disabled",
			cfg:         nil,
			unavailable: true,
		},
		{
			name:        "pmtiles without source is disabled",
			cfg:         &config.DirectionsConfig{Provider: "pmtiles", PMTiles: &config.PMTilesConfig{}},
			unavailable: true,
		},
		{
			name:     "mapbox with token",
			cfg:      &config.DirectionsConfig{Provider: "mapbox", Mapbox: &config.MapboxConfig{BaseURL: "https://api.mapbox.com", AccessToken: "pk.test"}},
			wantName: "mapbox",
		},
		{
			name:    "unknown provider",
			cfg:     &config.DirectionsConfig{Provider: "osrm"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider, err := NewDirectionsProvider(ProviderParams{
				Config: &config.Config{Directions: tt.cfg},
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			if tt.unavailable {
				_, err := provider.Route(context.Background(),
					entity.Coordinate{Lat: 25.033, Lng: 121.5654},
					entity.Coordinate{Lat: 25.04, Lng: 121.56},
					entity.TravelProfileWalking,
				)
				assert.ErrorIs(t, err, domainerrors.ErrDirectionsUnavailable)

				return
			}
			assert.Equal(t, tt.wantName, provider.Name())
		})
	}
}
