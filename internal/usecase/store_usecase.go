package usecase

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreUsecase reads stores for display.
type StoreUsecase interface {
	// Nearby returns active stores sorted by distance from the current fix, or by name
	// without a fix. A limit of zero returns every store.
	Nearby(ctx context.Context, limit int) ([]*entity.NearbyStore, error)

	// Get returns a store and records it as recently viewed.
	Get(ctx context.Context, storeID uuid.UUID) (*entity.NearbyStore, error)

	// RecentlyViewed returns the recently viewed stores, most recent first.
	RecentlyViewed(ctx context.Context) ([]*entity.NearbyStore, error)

	// QRCode returns a PNG deep-link QR code for a store, optionally focused on a product.
	QRCode(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID) ([]byte, error)
}
