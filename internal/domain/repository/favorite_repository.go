package repository

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when a product is already favorited.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository persists favorites of authenticated users.
type FavoriteRepository interface {
	// FindFavoritesByUser returns the favorites of a user joined with product and store display fields.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProduct, error)

	// CreateFavorites inserts favorites in one statement.
	CreateFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error

	// ReplaceFavorites makes favorites the complete favorite set of the user.
	ReplaceFavorites(ctx context.Context, userID uuid.UUID, favorites []*entity.FavoriteProduct) error

	// DeleteFavorite removes a product from the user's favorites.
	DeleteFavorite(ctx context.Context, userID, productID uuid.UUID) error

	// DeleteFavoritesByUser removes every favorite of the user.
	DeleteFavoritesByUser(ctx context.Context, userID uuid.UUID) error
}
