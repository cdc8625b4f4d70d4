package impl

import (
	"context"
	"testing"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service     usecase.SearchUsecase
	productRepo *mockRepo.MockProductRepository
	location    *mockUsecase.MockLocationUsecase
	persistence *mockUsecase.MockPersistenceUsecase
	reminders   *mockUsecase.MockReminderUsecase
	local       *memoryLocalStore
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	fx := searchServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		location:    mockUsecase.NewMockLocationUsecase(t),
		persistence: mockUsecase.NewMockPersistenceUsecase(t),
		reminders:   mockUsecase.NewMockReminderUsecase(t),
		local:       newMemoryLocalStore(),
	}
	fx.service = NewSearchService(fx.productRepo, fx.location, fx.persistence, fx.reminders, fx.local, newTestConfig(), newDiscardLogger())

	return fx
}

func searchHit(name string, lat, lng *float64) *entity.ProductResult {
	return &entity.ProductResult{
		Product: entity.Product{ID: uuid.New(), Name: name, IsActive: true},
		Store:   entity.Store{ID: uuid.New(), Name: name + " Store", Lat: lat, Lng: lng, IsActive: true},
	}
}

func TestSearchService_Search_SortsByDistanceAndFiltersByProximity(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	near := searchHit("Milk B", ptr(storeLat+0.001), ptr(storeLng))
	nearer := searchHit("Milk A", ptr(storeLat+0.0005), ptr(storeLng))
	far := searchHit("Milk C", ptr(storeLat+0.1), ptr(storeLng))

	prefs := entity.Preferences{SearchProximityMeters: ptr(1000.0), PriceMax: ptr(10.0)}
	fx.persistence.EXPECT().LoadPreferences(ctx).Return(&prefs, nil).Once()
	fx.productRepo.EXPECT().SearchProducts(ctx, repository.ProductSearchFilter{Query: "milk", MinPrice: ptr(1.0), MaxPrice: ptr(10.0)}).
		Return([]*entity.ProductResult{near, far, nearer}, nil).Once()
	fx.location.EXPECT().GetLocation(ctx, false).Return(&entity.LocationFix{Lat: storeLat, Lng: storeLng}, nil).Once()

	result, err := fx.service.Search(ctx, &usecase.SearchInput{Query: " milk ", MinPrice: ptr(1.0)})
	require.NoError(t, err)
	assert.True(t, result.LocationAvailable)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "Milk A", result.Results[0].Product.Name)
	assert.Equal(t, "Milk B", result.Results[1].Product.Name)
	require.NotNil(t, result.Results[0].DistanceMeters)
	assert.Equal(t, "56 m", result.Results[0].FormattedDistance)
	assert.Nil(t, result.Reminder)
}

func TestSearchService_Search_WithoutLocationSortsByName(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.persistence.EXPECT().LoadPreferences(ctx).Return(ptr(entity.DefaultPreferences()), nil).Once()
	fx.productRepo.EXPECT().SearchProducts(ctx, mock.Anything).
		Return([]*entity.ProductResult{searchHit("yogurt", nil, nil), searchHit("Bread", nil, nil)}, nil).Once()
	fx.location.EXPECT().GetLocation(ctx, false).Return(nil, domainerrors.ErrLocationPermissionDenied).Once()

	result, err := fx.service.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)
	assert.False(t, result.LocationAvailable)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "Bread", result.Results[0].Product.Name)
	assert.Nil(t, result.Results[0].DistanceMeters)

	// Empty queries are not recorded.
	history, err := fx.service.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSearchService_Search_NoResultsCreatesReminder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		fix          *entity.LocationFix
		created      bool
		wantReminder bool
	}{
		{name: "new reminder is returned", fix: &entity.LocationFix{Lat: storeLat, Lng: storeLng}, created: true, wantReminder: true},
		{name: "existing reminder is not returned", fix: &entity.LocationFix{Lat: storeLat, Lng: storeLng}, created: false},
		{name: "no reminder without location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestSearchService(t)
			ctx := context.Background()

			fx.persistence.EXPECT().LoadPreferences(ctx).Return(ptr(entity.DefaultPreferences()), nil).Once()
			fx.productRepo.EXPECT().SearchProducts(ctx, mock.Anything).Return(nil, nil).Once()
			if tt.fix != nil {
				fx.location.EXPECT().GetLocation(ctx, false).Return(tt.fix, nil).Once()
				fx.reminders.EXPECT().Create(ctx, &usecase.CreateReminderInput{SearchTerm: "dragon fruit"}).
					Return(&entity.ProductReminder{ID: uuid.New(), SearchTerm: "dragon fruit"}, tt.created, nil).Once()
			} else {
				fx.location.EXPECT().GetLocation(ctx, false).Return(nil, domainerrors.ErrTimeout).Once()
			}

			result, err := fx.service.Search(ctx, &usecase.SearchInput{Query: "dragon fruit"})
			require.NoError(t, err)
			assert.Empty(t, result.Results)
			assert.Equal(t, tt.wantReminder, result.Reminder != nil)
		})
	}
}

func TestSearchService_History(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.persistence.EXPECT().LoadPreferences(ctx).Return(ptr(entity.DefaultPreferences()), nil)
	fx.productRepo.EXPECT().SearchProducts(ctx, mock.Anything).Return([]*entity.ProductResult{searchHit("x", nil, nil)}, nil)
	fx.location.EXPECT().GetLocation(ctx, false).Return(nil, domainerrors.ErrTimeout)

	for _, q := range []string{"milk", "bread", "eggs", "MILK", "tea", "rice", "jam"} {
		_, err := fx.service.Search(ctx, &usecase.SearchInput{Query: q})
		require.NoError(t, err)
	}

	history, err := fx.service.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jam", "rice", "tea", "MILK", "eggs"}, history)

	require.NoError(t, fx.service.ClearSearchHistory(ctx))
	assert.False(t, fx.local.has(constants.LocalKeySearchHistory))
}

// A failed search while located becomes a reminder that fires once the product shows up nearby.
func TestSearchService_FailedSearchReminderFiresLater(t *testing.T) {
	ctx := context.Background()

	rfx := createTestReminderMonitor(t)
	rfx.load(t)

	productRepo := mockRepo.NewMockProductRepository(t)
	search := NewSearchService(productRepo, rfx.location, rfx.persistence, rfx.monitor, newMemoryLocalStore(), newTestConfig(), newDiscardLogger())

	rfx.expectUserAt(storeLat, storeLng)
	rfx.persistence.EXPECT().LoadPreferences(ctx).Return(ptr(entity.DefaultPreferences()), nil).Once()
	productRepo.EXPECT().SearchProducts(ctx, mock.Anything).Return(nil, nil).Once()

	var saved *entity.ProductReminder
	rfx.store.EXPECT().LoadReminders(ctx).Return(nil, nil).Once()
	rfx.store.EXPECT().AddReminder(ctx, mock.Anything).RunAndReturn(func(_ context.Context, r *entity.ProductReminder) error {
		saved = r

		return nil
	}).Once()

	result, err := search.Search(ctx, &usecase.SearchInput{Query: "milk"})
	require.NoError(t, err)
	require.NotNil(t, result.Reminder)
	require.NotNil(t, saved)

	rfx.productRepo.EXPECT().FindAvailableForReminders(mock.Anything, []string{"milk"}, []uuid.UUID(nil)).
		Return([]*entity.ProductAvailability{rfx.product}, nil).Once()
	rfx.store.EXPECT().MarkNotified(mock.Anything, saved.ID, mock.Anything).Return(nil).Once()
	rfx.publisher.EXPECT().PublishReminderMatched(mock.Anything, mock.Anything).Return(nil).Once()

	raised, err := rfx.monitor.Check(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, saved.ID, raised[0].ReminderID)
}
