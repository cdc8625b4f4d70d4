package usecase

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages the favorite products of the current scope.
type FavoriteUsecase interface {
	List(ctx context.Context) ([]*entity.FavoriteProduct, error)
	// Add favorites a product. Adding a favorited product returns the existing favorite.
	Add(ctx context.Context, productID uuid.UUID) (*entity.FavoriteProduct, error)
	Remove(ctx context.Context, productID uuid.UUID) error
	Clear(ctx context.Context) error
	IsFavorited(ctx context.Context, productID uuid.UUID) (bool, error)
}
