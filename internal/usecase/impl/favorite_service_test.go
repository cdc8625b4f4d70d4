package impl

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	mockRepo "shopradar/internal/mocks/repository"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service     usecase.FavoriteUsecase
	persistence *mockUsecase.MockPersistenceUsecase
	store       *mockRepo.MockFavoriteStore
	productRepo *mockRepo.MockProductRepository
	storeRepo   *mockRepo.MockStoreRepository
	clock       *clock.Mock
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))

	fx := favoriteServiceFixtures{
		persistence: mockUsecase.NewMockPersistenceUsecase(t),
		store:       mockRepo.NewMockFavoriteStore(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		storeRepo:   mockRepo.NewMockStoreRepository(t),
		clock:       clk,
	}
	fx.persistence.EXPECT().FavoriteStore().Return(fx.store).Maybe()
	fx.service = NewFavoriteService(fx.persistence, fx.productRepo, fx.storeRepo, clk, newDiscardLogger())

	return fx
}

func TestFavoriteService_Add(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	shop := &entity.Store{ID: uuid.New(), Name: "Corner Market"}
	product := &entity.Product{ID: uuid.New(), StoreID: shop.ID, Name: "Oat Milk", Price: 3.49}

	fx.store.EXPECT().LoadFavorites(ctx).Return(nil, nil).Once()
	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil).Once()
	fx.storeRepo.EXPECT().FindStoreByID(ctx, shop.ID).Return(shop, nil).Once()
	fx.store.EXPECT().AddFavorite(ctx, mock.AnythingOfType("*entity.FavoriteProduct")).Return(nil).Once()

	favorite, err := fx.service.Add(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", favorite.ProductName)
	assert.Equal(t, "Corner Market", favorite.StoreName)
	assert.Equal(t, 3.49, favorite.Price)
	assert.Equal(t, entity.DefaultCurrency, favorite.Currency)
	assert.Equal(t, entity.DefaultCurrencySymbol, favorite.CurrencySymbol)
	assert.Equal(t, fx.clock.Now(), favorite.CreatedAt)
}

func TestFavoriteService_Add_AlreadyFavorited(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	existing := &entity.FavoriteProduct{ID: uuid.New(), ProductID: uuid.New(), Currency: "EUR", CurrencySymbol: "€"}
	fx.store.EXPECT().LoadFavorites(ctx).Return([]*entity.FavoriteProduct{existing}, nil).Once()

	favorite, err := fx.service.Add(ctx, existing.ProductID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, favorite.ID)
	assert.Equal(t, "EUR", favorite.Currency)
	fx.productRepo.AssertNotCalled(t, "FindProductByID", mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_UnknownProduct(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.store.EXPECT().LoadFavorites(ctx).Return(nil, nil).Once()
	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound).Once()

	_, err := fx.service.Add(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFavoriteService_Remove(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.store.EXPECT().RemoveFavorite(ctx, productID).Return(nil).Once()
	require.NoError(t, fx.service.Remove(ctx, productID))

	fx.store.EXPECT().RemoveFavorite(ctx, productID).Return(repository.ErrFavoriteNotFound).Once()
	assert.ErrorIs(t, fx.service.Remove(ctx, productID), domainerrors.ErrNotFound)
}

func TestFavoriteService_ListAndIsFavorited(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	favorite := &entity.FavoriteProduct{ID: uuid.New(), ProductID: uuid.New()}
	fx.persistence.EXPECT().LoadFavorites(ctx).Return([]*entity.FavoriteProduct{favorite}, nil).Times(3)

	favorites, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, entity.DefaultCurrencySymbol, favorites[0].CurrencySymbol)

	ok, err := fx.service.IsFavorited(ctx, favorite.ProductID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.IsFavorited(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteService_Clear(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.store.EXPECT().Clear(ctx).Return(nil).Once()
	require.NoError(t, fx.service.Clear(ctx))
}
