package usecase

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReminderInput is an explicit reminder request.
type CreateReminderInput struct {
	SearchTerm string     `json:"search_term" validate:"required,max=200"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	StoreID    *uuid.UUID `json:"store_id,omitempty"`
}

// ReminderUsecase is the product reminder monitor.
type ReminderUsecase interface {
	PreferenceObserver

	// Start loads the reminders and starts the check and refresh loops.
	Start(ctx context.Context) error

	// Stop cancels both loops.
	Stop()

	// Check runs one poll tick and returns the notifications it raised.
	Check(ctx context.Context) ([]*entity.ReminderNotification, error)

	// Refresh reloads the notification preference and the pending reminders of the current scope.
	Refresh(ctx context.Context) error

	// Reminders returns the pending reminders the monitor works with.
	Reminders() []*entity.ProductReminder

	// Notifications returns the notifications that are still displayed.
	Notifications() []*entity.ReminderNotification

	// View acknowledges a notification and returns its navigation target.
	View(ctx context.Context, notificationID string) (string, error)

	// Acknowledge handles a notification that timed out without action.
	Acknowledge(ctx context.Context, notificationID string) error

	// Dismiss permanently deactivates a reminder.
	Dismiss(ctx context.Context, reminderID uuid.UUID) error

	// ClearAll removes every reminder of the current scope.
	ClearAll(ctx context.Context) error

	// Create saves a reminder unless a pending one with the same term exists.
	// The returned flag is false when the existing reminder is returned.
	Create(ctx context.Context, input *CreateReminderInput) (*entity.ProductReminder, bool, error)
}
