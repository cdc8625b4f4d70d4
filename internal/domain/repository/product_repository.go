package repository

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductSearchFilter narrows a product search.
type ProductSearchFilter struct {
	Query    string   // Case-insensitive substring of the product name. Empty matches all.
	MinPrice *float64 // Inclusive lower price bound.
	MaxPrice *float64 // Inclusive upper price bound.
}

// ProductRepository reads products from the backend data store.
type ProductRepository interface {
	// SearchProducts returns active products of active stores that have coordinates.
	SearchProducts(ctx context.Context, filter ProductSearchFilter) ([]*entity.ProductResult, error)

	// FindAvailableForReminders returns active, in-stock products whose name contains any of
	// terms (case-insensitive) or whose ID is in productIDs, joined with their store position.
	FindAvailableForReminders(ctx context.Context, terms []string, productIDs []uuid.UUID) ([]*entity.ProductAvailability, error)

	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
