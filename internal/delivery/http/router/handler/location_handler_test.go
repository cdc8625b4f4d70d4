package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/infra/geolocation"
	mockUsecase "shopradar/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(t *testing.T) (*LocationHandler, *mockUsecase.MockLocationUsecase, *geolocation.Bridge) {
	t.Helper()

	locationUC := mockUsecase.NewMockLocationUsecase(t)
	bridge := geolocation.NewBridge()

	return NewLocationHandler(LocationHandlerParams{
		LocationUC: locationUC,
		Bridge:     bridge,
		Logger:     discardLogger(),
	}), locationUC, bridge
}

func TestLocationHandler_GetLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		refresh    bool
		fix        *entity.LocationFix
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "cached fix",
			target:     "/api/v1/location",
			fix:        &entity.LocationFix{Lat: 25.033, Lng: 121.5654, AccuracyMeters: 8, TimestampMs: 1700000000000},
			wantStatus: http.StatusOK,
		},
		{
			name:       "forced refresh",
			target:     "/api/v1/location?refresh=true",
			refresh:    true,
			fix:        &entity.LocationFix{Lat: 25.033, Lng: 121.5654, AccuracyMeters: 4, TimestampMs: 1700000000000},
			wantStatus: http.StatusOK,
		},
		{
			name:       "permission denied",
			target:     "/api/v1/location",
			err:        domainerrors.ErrLocationPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantCode:   "LOCATION_PERMISSION_DENIED",
		},
		{
			name:       "timeout",
			target:     "/api/v1/location",
			err:        domainerrors.ErrTimeout.WithDetails("position request timed out"),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, locationUC, _ := newLocationHandler(t)
			locationUC.EXPECT().GetLocation(mock.Anything, tt.refresh).Return(tt.fix, tt.err).Once()

			c, rec := newContext(http.MethodGet, tt.target, "")
			require.NoError(t, h.GetLocation(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}

			var got entity.LocationFix
			decodeData(t, rec, &got)
			assert.Equal(t, *tt.fix, got)
		})
	}
}

func TestLocationHandler_PushReading_AnswersWaitingRequest(t *testing.T) {
	t.Parallel()

	h, _, bridge := newLocationHandler(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan *entity.LocationFix, 1)
	go func() {
		fix, _ := bridge.CurrentPosition(ctx)
		done <- fix
	}()
	require.Eventually(t, func() bool { return bridge.Waiting() == 1 }, time.Second, 5*time.Millisecond)

	c, rec := newContext(http.MethodPost, "/api/v1/location/readings",
		`{"lat":25.033,"lng":121.5654,"accuracy_meters":6.5,"timestamp":1700000000000}`)
	require.NoError(t, h.PushReading(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int
	decodeData(t, rec, &got)
	assert.Equal(t, 1, got["answered"])

	fix := <-done
	require.NotNil(t, fix)
	assert.InDelta(t, 6.5, fix.AccuracyMeters, 1e-9)
	assert.Equal(t, int64(1700000000000), fix.TimestampMs)
}

func TestLocationHandler_PushReading_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "latitude out of range", body: `{"lat":95,"lng":121.5,"accuracy_meters":5,"timestamp":1700000000000}`},
		{name: "negative accuracy", body: `{"lat":25,"lng":121.5,"accuracy_meters":-1,"timestamp":1700000000000}`},
		{name: "missing timestamp", body: `{"lat":25,"lng":121.5,"accuracy_meters":5}`},
		{name: "malformed body", body: `{"lat":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _, bridge := newLocationHandler(t)

			c, rec := newContext(http.MethodPost, "/api/v1/location/readings", tt.body)
			require.NoError(t, h.PushReading(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, bridge.Waiting())
		})
	}
}

func TestLocationHandler_PushError(t *testing.T) {
	t.Parallel()

	h, _, bridge := newLocationHandler(t)

	errs := make(chan error, 1)
	go func() {
		_, err := bridge.CurrentPosition(context.Background())
		errs <- err
	}()
	require.Eventually(t, func() bool { return bridge.Waiting() == 1 }, time.Second, 5*time.Millisecond)

	c, rec := newContext(http.MethodPost, "/api/v1/location/errors", `{"kind":"permission-denied","message":"user denied"}`)
	require.NoError(t, h.PushError(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var posErr *domainerrors.PositionError
	require.ErrorAs(t, <-errs, &posErr)
	assert.Equal(t, domainerrors.PositionPermissionDenied, posErr.Kind)
}

func TestLocationHandler_PushError_UnknownKind(t *testing.T) {
	t.Parallel()

	h, _, _ := newLocationHandler(t)

	c, rec := newContext(http.MethodPost, "/api/v1/location/errors", `{"kind":"exploded"}`)
	require.NoError(t, h.PushError(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestLocationHandler_SetAvailability(t *testing.T) {
	t.Parallel()

	h, _, bridge := newLocationHandler(t)

	c, rec := newContext(http.MethodPut, "/api/v1/location/availability", `{"available":false}`)
	require.NoError(t, h.SetAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, bridge.Available())

	c, rec = newContext(http.MethodPut, "/api/v1/location/availability", `{}`)
	require.NoError(t, h.SetAvailability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, bridge.Available())
}
