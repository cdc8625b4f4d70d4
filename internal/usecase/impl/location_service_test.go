package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockSvc "shopradar/internal/mocks/service"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service  *locationService
	provider *mockSvc.MockPositionProvider
	local    *memoryLocalStore
	clock    *clock.Mock
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	provider := mockSvc.NewMockPositionProvider(t)
	local := newMemoryLocalStore()
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	svc := NewLocationService(provider, local, clk, newTestConfig(), newDiscardLogger()).(*locationService)

	return locationServiceFixtures{
		service:  svc,
		provider: provider,
		local:    local,
		clock:    clk,
	}
}

func reading(accuracy float64) *entity.LocationFix {
	return &entity.LocationFix{Lat: 25.0330, Lng: 121.5654, AccuracyMeters: accuracy, TimestampMs: 1}
}

func TestLocationService_GetLocation_KeepsMostAccurateReading(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(40), nil).Once()
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(12), nil).Once()
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(25), nil).Once()

	fix, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 12.0, fix.AccuracyMeters)

	state := fx.service.State()
	assert.Equal(t, entity.LocationStatusSuccess, state.Status)
	require.NotNil(t, state.Fix)
	assert.Equal(t, 12.0, state.Fix.AccuracyMeters)
	assert.True(t, fx.local.has(constants.LocalKeyLocationCache))
}

func TestLocationService_GetLocation_CacheFreshness(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(10), nil).Times(3)

	first, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)

	// Still fresh: no platform call.
	fx.clock.Add(4*time.Minute + 59*time.Second)
	cached, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
	fx.provider.AssertNumberOfCalls(t, "CurrentPosition", 3)

	// Stale: a new sampling run.
	fx.clock.Add(2 * time.Second)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(8), nil).Times(3)

	fresh, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 8.0, fresh.AccuracyMeters)
	fx.provider.AssertNumberOfCalls(t, "CurrentPosition", 6)
}

func TestLocationService_GetLocation_ForceRefreshBypassesCache(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(10), nil).Times(6)

	_, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)

	_, err = fx.service.GetLocation(ctx, true)
	require.NoError(t, err)
	fx.provider.AssertNumberOfCalls(t, "CurrentPosition", 6)
}

func TestLocationService_GetLocation_PermissionDenied(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	// Seed a stale cache slot that must be cleared on failure.
	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(10), nil).Times(3)
	_, err := fx.service.GetLocation(ctx, false)
	require.NoError(t, err)

	fx.provider.EXPECT().CurrentPosition(mock.Anything).
		Return(nil, domainerrors.NewPositionError(domainerrors.PositionPermissionDenied, "user denied")).Once()

	fix, err := fx.service.GetLocation(ctx, true)
	assert.Nil(t, fix)
	assert.ErrorIs(t, err, domainerrors.ErrLocationPermissionDenied)
	assert.Equal(t, entity.LocationStatusDenied, fx.service.State().Status)
	assert.False(t, fx.local.has(constants.LocalKeyLocationCache))
}

func TestLocationService_GetLocation_PermissionDeniedAfterReadingAborts(t *testing.T) {
	fx := createTestLocationService(t)

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(10), nil).Once()
	fx.provider.EXPECT().CurrentPosition(mock.Anything).
		Return(nil, domainerrors.NewPositionError(domainerrors.PositionPermissionDenied, "revoked")).Once()

	_, err := fx.service.GetLocation(context.Background(), false)
	assert.ErrorIs(t, err, domainerrors.ErrLocationPermissionDenied)
}

func TestLocationService_GetLocation_TimeoutAfterReadingKeepsBest(t *testing.T) {
	fx := createTestLocationService(t)

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).Return(reading(15), nil).Once()
	fx.provider.EXPECT().CurrentPosition(mock.Anything).
		Return(nil, domainerrors.NewPositionError(domainerrors.PositionTimeout, "")).Once()

	fix, err := fx.service.GetLocation(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 15.0, fix.AccuracyMeters)
	fx.provider.AssertNumberOfCalls(t, "CurrentPosition", 2)
}

func TestLocationService_GetLocation_TimeoutWithoutReading(t *testing.T) {
	fx := createTestLocationService(t)

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).
		Return(nil, domainerrors.NewPositionError(domainerrors.PositionTimeout, "")).Once()

	_, err := fx.service.GetLocation(context.Background(), false)
	assert.ErrorIs(t, err, domainerrors.ErrTimeout)
	assert.Equal(t, entity.LocationStatusDenied, fx.service.State().Status)
}

func TestLocationService_GetLocation_GeolocationUnavailable(t *testing.T) {
	fx := createTestLocationService(t)

	fx.provider.EXPECT().Available().Return(false)

	_, err := fx.service.GetLocation(context.Background(), false)
	assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)
	fx.provider.AssertNotCalled(t, "CurrentPosition", mock.Anything)
}

func TestLocationService_GetLocation_OverlappingCallsShareOneRun(t *testing.T) {
	fx := createTestLocationService(t)
	fx.service.config.Samples = 1

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	fx.provider.EXPECT().Available().Return(true)
	fx.provider.EXPECT().CurrentPosition(mock.Anything).RunAndReturn(func(context.Context) (*entity.LocationFix, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release

		return reading(5), nil
	})

	var wg sync.WaitGroup
	results := make([]*entity.LocationFix, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fix, err := fx.service.GetLocation(context.Background(), true)
			assert.NoError(t, err)
			results[i] = fix
		}(i)
		if i == 0 {
			<-started
		}
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, results[0], results[1])
}

func TestLocationService_State_InitiallyIdle(t *testing.T) {
	fx := createTestLocationService(t)

	state := fx.service.State()
	assert.Equal(t, entity.LocationStatusIdle, state.Status)
	assert.False(t, state.HasFix())
}
