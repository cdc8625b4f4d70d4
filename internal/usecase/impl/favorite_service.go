package impl

import (
	"context"
	"fmt"
	"log/slog"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/errors"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type favoriteService struct {
	persistence usecase.PersistenceUsecase
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	clock       clock.Clock
	logger      *slog.Logger
}

// NewFavoriteService creates the favorite service.
func NewFavoriteService(
	persistence usecase.PersistenceUsecase,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		persistence: persistence,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		clock:       clk,
		logger:      logger,
	}
}

// List returns the favorites of the current scope with currency defaults applied.
func (s *favoriteService) List(ctx context.Context) ([]*entity.FavoriteProduct, error) {
	favorites, err := s.persistence.LoadFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	for _, f := range favorites {
		f.ApplyCurrencyDefaults()
	}

	return favorites, nil
}

// Add favorites a product, copying its display fields.
func (s *favoriteService) Add(ctx context.Context, productID uuid.UUID) (*entity.FavoriteProduct, error) {
	store := s.persistence.FavoriteStore()

	existing, err := store.LoadFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	for _, f := range existing {
		if f.ProductID == productID {
			f.ApplyCurrencyDefaults()

			return f, nil
		}
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	shop, err := s.storeRepo.FindStoreByID(ctx, product.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	favorite := &entity.FavoriteProduct{
		ID:             uuid.New(),
		ProductID:      product.ID,
		StoreID:        shop.ID,
		ProductName:    product.Name,
		Price:          product.Price,
		ImageURL:       product.ImageURL,
		StoreName:      shop.Name,
		Currency:       product.Currency,
		CurrencySymbol: product.CurrencySymbol,
		CreatedAt:      s.clock.Now(),
	}
	favorite.ApplyCurrencyDefaults()

	if err := store.AddFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return favorite, nil
		}

		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}

	s.logger.Debug("Product favorited", slog.String("product_id", productID.String()))

	return favorite, nil
}

// Remove removes the favorite of a product.
func (s *favoriteService) Remove(ctx context.Context, productID uuid.UUID) error {
	if err := s.persistence.FavoriteStore().RemoveFavorite(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrNotFound.WithDetails("favorite not found")
		}

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// Clear removes every favorite of the current scope.
func (s *favoriteService) Clear(ctx context.Context) error {
	if err := s.persistence.FavoriteStore().Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	return nil
}

// IsFavorited reports whether the product is a favorite of the current scope.
func (s *favoriteService) IsFavorited(ctx context.Context, productID uuid.UUID) (bool, error) {
	favorites, err := s.persistence.LoadFavorites(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load favorites: %w", err)
	}

	for _, f := range favorites {
		if f.ProductID == productID {
			return true, nil
		}
	}

	return false, nil
}
