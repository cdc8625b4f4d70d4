// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store does not exist.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository reads stores from the backend data store.
type StoreRepository interface {
	// FindActiveStores returns every active store that has coordinates, in a stable order.
	FindActiveStores(ctx context.Context) ([]*entity.Store, error)

	// FindStoreByID retrieves a store by its ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoresByIDs retrieves the stores with the given IDs. Unknown IDs are skipped.
	FindStoresByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)
}
