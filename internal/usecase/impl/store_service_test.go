package impl

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"
	mockSvc "shopradar/internal/mocks/service"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service     usecase.StoreUsecase
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	location    *mockUsecase.MockLocationUsecase
	qrCodes     *mockSvc.MockQRCodeService
	local       *memoryLocalStore
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	clk := clock.NewMock()
	// A Monday.
	clk.Set(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	fx := storeServiceFixtures{
		storeRepo:   mockRepo.NewMockStoreRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		location:    mockUsecase.NewMockLocationUsecase(t),
		qrCodes:     mockSvc.NewMockQRCodeService(t),
		local:       newMemoryLocalStore(),
	}
	fx.service = NewStoreService(fx.storeRepo, fx.productRepo, fx.location, fx.qrCodes, fx.local, clk, newTestConfig(), newDiscardLogger())

	return fx
}

func TestStoreService_Nearby(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	far := &entity.Store{ID: uuid.New(), Name: "Harbor Grocer", Lat: ptr(storeLat + 0.02), Lng: ptr(storeLng)}
	near := &entity.Store{
		ID:           uuid.New(),
		Name:         "Corner Market",
		Lat:          ptr(storeLat),
		Lng:          ptr(storeLng),
		OpeningHours: []entity.OpeningHour{{Day: "Monday", Open: "08:00", Close: "20:00"}},
	}
	nowhere := &entity.Store{ID: uuid.New(), Name: "Anchor Foods"}

	fx.storeRepo.EXPECT().FindActiveStores(ctx).Return([]*entity.Store{nowhere, far, near}, nil).Twice()
	fx.location.EXPECT().GetLocation(ctx, false).Return(&entity.LocationFix{Lat: storeLat, Lng: storeLng}, nil).Once()

	stores, err := fx.service.Nearby(ctx, 0)
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, near.ID, stores[0].ID)
	assert.Equal(t, far.ID, stores[1].ID)
	assert.Nil(t, stores[2].DistanceMeters)
	assert.Equal(t, "Opened (closes at 20:00)", stores[0].Status.Text)
	assert.True(t, stores[0].Status.IsOpen)

	// Without a fix stores are listed by name.
	fx.location.EXPECT().GetLocation(ctx, false).Return(nil, domainerrors.ErrLocationPermissionDenied).Once()

	stores, err = fx.service.Nearby(ctx, 2)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Anchor Foods", stores[0].Name)
	assert.Equal(t, "Corner Market", stores[1].Name)
}

func TestStoreService_GetRecordsRecentlyViewed(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	first := &entity.Store{ID: uuid.New(), Name: "First"}
	second := &entity.Store{ID: uuid.New(), Name: "Second"}
	fx.storeRepo.EXPECT().FindStoreByID(ctx, first.ID).Return(first, nil)
	fx.storeRepo.EXPECT().FindStoreByID(ctx, second.ID).Return(second, nil)
	fx.location.EXPECT().GetLocation(ctx, false).Return(nil, domainerrors.ErrTimeout)

	for _, id := range []uuid.UUID{first.ID, second.ID, first.ID} {
		_, err := fx.service.Get(ctx, id)
		require.NoError(t, err)
	}

	var raw []string
	found, err := readLocalJSON(ctx, fx.local, constants.LocalKeyRecentlyViewed, &raw)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{first.ID.String(), second.ID.String()}, raw)

	// A store deleted since it was viewed is skipped.
	fx.storeRepo.EXPECT().FindStoresByIDs(ctx, []uuid.UUID{first.ID, second.ID}).Return([]*entity.Store{second}, nil).Once()

	recent, err := fx.service.RecentlyViewed(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, second.ID, recent[0].ID)
}

func TestStoreService_Get_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound).Once()

	_, err := fx.service.Get(ctx, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.False(t, fx.local.has(constants.LocalKeyRecentlyViewed))
}

func TestStoreService_QRCode(t *testing.T) {
	t.Parallel()

	storeID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name      string
		productID *uuid.UUID
		setupMock func(fx storeServiceFixtures)
		wantErr   error
	}{
		{
			name: "store only",
			setupMock: func(fx storeServiceFixtures) {
				fx.storeRepo.EXPECT().FindStoreByID(mock.Anything, storeID).Return(&entity.Store{ID: storeID}, nil).Once()
				fx.qrCodes.EXPECT().GenerateStoreQR(storeID, (*uuid.UUID)(nil)).Return([]byte("png"), nil).Once()
			},
		},
		{
			name:      "store with product",
			productID: &productID,
			setupMock: func(fx storeServiceFixtures) {
				fx.storeRepo.EXPECT().FindStoreByID(mock.Anything, storeID).Return(&entity.Store{ID: storeID}, nil).Once()
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).
					Return(&entity.Product{ID: productID, StoreID: storeID}, nil).Once()
				fx.qrCodes.EXPECT().GenerateStoreQR(storeID, &productID).Return([]byte("png"), nil).Once()
			},
		},
		{
			name:      "product of another store",
			productID: &productID,
			setupMock: func(fx storeServiceFixtures) {
				fx.storeRepo.EXPECT().FindStoreByID(mock.Anything, storeID).Return(&entity.Store{ID: storeID}, nil).Once()
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).
					Return(&entity.Product{ID: productID, StoreID: uuid.New()}, nil).Once()
			},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name: "unknown store",
			setupMock: func(fx storeServiceFixtures) {
				fx.storeRepo.EXPECT().FindStoreByID(mock.Anything, storeID).Return(nil, repository.ErrStoreNotFound).Once()
			},
			wantErr: domainerrors.ErrStoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestStoreService(t)
			tt.setupMock(fx)

			png, err := fx.service.QRCode(context.Background(), storeID, tt.productID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []byte("png"), png)
		})
	}
}
