package geolocation

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/errors"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForWaiters blocks until n requests are parked on the bridge.
func waitForWaiters(t *testing.T, b *Bridge, n int) {
	t.Helper()

	require.Eventually(t, func() bool { return b.Waiting() == n }, time.Second, time.Millisecond)
}

func TestBridge_PushAnswersWaitingRequests(t *testing.T) {
	bridge := NewBridge()
	results := make(chan *entity.LocationFix, 2)

	for range 2 {
		go func() {
			fix, err := bridge.CurrentPosition(context.Background())
			assert.NoError(t, err)
			results <- fix
		}()
	}
	waitForWaiters(t, bridge, 2)

	answered := bridge.Push(entity.LocationFix{Lat: 25.033, Lng: 121.5654, AccuracyMeters: 8})

	assert.Equal(t, 2, answered)
	for range 2 {
		fix := <-results
		require.NotNil(t, fix)
		assert.Equal(t, 8.0, fix.AccuracyMeters)
	}
	assert.Zero(t, bridge.Waiting())
}

func TestBridge_PushWithoutWaiters(t *testing.T) {
	bridge := NewBridge()

	assert.Zero(t, bridge.Push(entity.LocationFix{Lat: 1, Lng: 2}))
}

func TestBridge_PushError(t *testing.T) {
	bridge := NewBridge()
	errs := make(chan error, 1)

	go func() {
		_, err := bridge.CurrentPosition(context.Background())
		errs <- err
	}()
	waitForWaiters(t, bridge, 1)

	bridge.PushError(domainerrors.PositionPermissionDenied, "user denied")

	var posErr *domainerrors.PositionError
	require.True(t, errors.As(<-errs, &posErr))
	assert.Equal(t, domainerrors.PositionPermissionDenied, posErr.Kind)
}

func TestBridge_DeadlineIsTimeout(t *testing.T) {
	bridge := NewBridge()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := bridge.CurrentPosition(ctx)

	var posErr *domainerrors.PositionError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, domainerrors.PositionTimeout, posErr.Kind)
	assert.Zero(t, bridge.Waiting())
}

func TestBridge_Available(t *testing.T) {
	bridge := NewBridge()
	assert.True(t, bridge.Available())

	bridge.SetAvailable(false)
	assert.False(t, bridge.Available())
}

func TestStatic_CurrentPosition(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	static := NewStatic(config.StaticLocationConfig{Lat: 25.033, Lng: 121.5654, Accuracy: 5}, clk)

	fix, err := static.CurrentPosition(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.LocationFix{Lat: 25.033, Lng: 121.5654, AccuracyMeters: 5, TimestampMs: clk.Now().UnixMilli()}, *fix)
}

func TestNewPositionProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bridge := NewBridge()

	tests := []struct {
		name     string
		location *config.LocationConfig
		wantErr  bool
		wantType any
	}{
		{name: "default bridge", location: nil, wantType: &Bridge{}},
		{name: "static", location: &config.LocationConfig{Provider: "static", Static: &config.StaticLocationConfig{Lat: 1}}, wantType: &Static{}},
		{name: "static without position", location: &config.LocationConfig{Provider: "static"}, wantErr: true},
		{name: "unknown", location: &config.LocationConfig{Provider: "gps"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Location: tt.location}
			provider, err := NewPositionProvider(ProviderParams{Config: cfg, Bridge: bridge, Clock: clock.NewMock(), Logger: logger})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, provider)
		})
	}
}
