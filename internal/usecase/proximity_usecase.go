package usecase

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityUsecase is the store proximity monitor.
type ProximityUsecase interface {
	PreferenceObserver

	// Start loads the store snapshot and the auto-open preference and starts polling.
	Start(ctx context.Context) error

	// Stop cancels polling. Later ticks and callbacks do nothing.
	Stop()

	// Check runs one poll tick and returns the active prompt, if any.
	Check(ctx context.Context) (*entity.DetectedStore, error)

	// State returns a snapshot of the monitor.
	State() entity.ProximityState

	// Dismiss closes the prompt for storeID; remember appends the store to the saved list.
	Dismiss(ctx context.Context, storeID uuid.UUID, remember bool) error

	// View closes the prompt for storeID and returns the store to open.
	View(ctx context.Context, storeID uuid.UUID) (*entity.StoreLocation, error)

	SavedStores() []entity.StoreLocation
	ClearSavedStore(storeID uuid.UUID)
	ClearSavedStores()
}
