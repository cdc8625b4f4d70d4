package mapbox

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{
  "code": "Ok",
  "routes": [
    {
      "geometry": {"type": "LineString", "coordinates": [[121.5654, 25.033], [121.566, 25.034], [121.5671, 25.0351]]},
      "distance": 1250.4,
      "duration": 905.2
    },
    {
      "geometry": {"type": "LineString", "coordinates": [[121.5654, 25.033], [121.5671, 25.0351]]},
      "distance": 1800,
      "duration": 1300
    }
  ]
}`

var (
	origin      = entity.Coordinate{Lat: 25.033, Lng: 121.5654}
	destination = entity.Coordinate{Lat: 25.0351, Lng: 121.5671}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.MapboxConfig{
		BaseURL:           server.URL + "/",
		AccessToken:       "pk.test",
		Timeout:           time.Second,
		RequestsPerMinute: 6000,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_Route(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, okBody)
	})

	route, err := client.Route(context.Background(), origin, destination, entity.TravelProfileWalking)

	require.NoError(t, err)
	assert.Equal(t, "/directions/v5/mapbox/walking/121.5654,25.033;121.5671,25.0351", gotPath)
	assert.Equal(t, "access_token=pk.test&geometries=geojson", gotQuery)
	assert.Equal(t, entity.TravelProfileWalking, route.Profile)
	assert.Equal(t, 1250.4, route.DistanceMeters)
	assert.Equal(t, 905.2, route.DurationSeconds)
	assert.Equal(t, orb.LineString{{121.5654, 25.033}, {121.566, 25.034}, {121.5671, 25.0351}}, route.Geometry)
}

func TestClient_Route_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "no route",
			status:  http.StatusOK,
			body:    `{"code":"NoRoute","message":"No route found","routes":[]}`,
			wantErr: domainerrors.ErrNoRoute,
		},
		{
			name:    "empty routes",
			status:  http.StatusOK,
			body:    `{"code":"Ok","routes":[]}`,
			wantErr: domainerrors.ErrNoRoute,
		},
		{
			name:    "no segment",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":"NoSegment","message":"No road near coordinate"}`,
			wantErr: domainerrors.ErrNoRoute,
		},
		{
			name:   "invalid token",
			status: http.StatusUnauthorized,
			body:   `{"message":"Not Authorized - Invalid Token"}`,
		},
		{
			name:   "gateway error page",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
		},
		{
			name:   "point geometry",
			status: http.StatusOK,
			body:   `{"code":"Ok","routes":[{"geometry":{"type":"Point","coordinates":[121.5,25.0]},"distance":1,"duration":1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			route, err := client.Route(context.Background(), origin, destination, entity.TravelProfileDriving)

			require.Error(t, err)
			assert.Nil(t, route)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestClient_Route_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Route(context.Background(), origin, destination, entity.TravelProfileWalking)

	assert.True(t, errors.Is(err, domainerrors.ErrTimeout), "got %v", err)
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient(&config.MapboxConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
