package repository

import (
	"context"
	"time"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderStore is the reminder collection of one scope: the guest device or a signed-in user.
type ReminderStore interface {
	// LoadReminders returns every reminder of the scope.
	LoadReminders(ctx context.Context) ([]*entity.ProductReminder, error)

	// SaveReminders makes reminders the complete reminder set of the scope.
	SaveReminders(ctx context.Context, reminders []*entity.ProductReminder) error

	// AddReminder appends a reminder.
	AddReminder(ctx context.Context, reminder *entity.ProductReminder) error

	// MarkNotified sets notified_at on a reminder.
	MarkNotified(ctx context.Context, reminderID uuid.UUID, at time.Time) error

	// Dismiss permanently deactivates a reminder.
	Dismiss(ctx context.Context, reminderID uuid.UUID, at time.Time) error

	// Clear removes (guest) or dismisses (user) every reminder.
	Clear(ctx context.Context, at time.Time) error
}

// FavoriteStore is the favorite collection of one scope.
type FavoriteStore interface {
	// LoadFavorites returns every favorite of the scope.
	LoadFavorites(ctx context.Context) ([]*entity.FavoriteProduct, error)

	// SaveFavorites makes favorites the complete favorite set of the scope.
	SaveFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error

	// AddFavorite appends a favorite.
	AddFavorite(ctx context.Context, favorite *entity.FavoriteProduct) error

	// RemoveFavorite removes the favorite of a product.
	RemoveFavorite(ctx context.Context, productID uuid.UUID) error

	// Clear removes every favorite.
	Clear(ctx context.Context) error
}
