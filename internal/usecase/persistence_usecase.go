package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"

	"github.com/google/uuid"
)

// AuthListener is notified after every auth state transition.
type AuthListener func(ctx context.Context, event entity.AuthEvent, session entity.Session)

// AuthState holds the current auth state of the device.
type AuthState interface {
	// Current returns the current session. A session without user means guest.
	Current() entity.Session

	// Set replaces the session and notifies listeners in registration order.
	Set(ctx context.Context, session entity.Session)

	// Subscribe registers a listener for auth state transitions.
	Subscribe(listener AuthListener)
}

// PersistenceUsecase stores favorites, reminders and preferences in the backend
// matching the current auth state: device-local for guests, remote for users.
type PersistenceUsecase interface {
	// ReminderStore returns the reminder collection of the current scope.
	ReminderStore() repository.ReminderStore

	// FavoriteStore returns the favorite collection of the current scope.
	FavoriteStore() repository.FavoriteStore

	LoadReminders(ctx context.Context) ([]*entity.ProductReminder, error)
	SaveReminders(ctx context.Context, reminders []*entity.ProductReminder) error

	LoadFavorites(ctx context.Context) ([]*entity.FavoriteProduct, error)
	SaveFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error

	// LoadPreferences returns the local preferences, overridden by the remote profile
	// when signed in and a profile exists.
	LoadPreferences(ctx context.Context) (*entity.Preferences, error)

	// SavePreferences writes the local cache and, when signed in, the remote profile.
	SavePreferences(ctx context.Context, prefs *entity.Preferences) error

	// MigrateGuestToUser copies guest favorites and reminders not yet present
	// remotely to the user and clears the guest copies on success.
	MigrateGuestToUser(ctx context.Context, userID uuid.UUID) (*entity.MigrationResult, error)
}
