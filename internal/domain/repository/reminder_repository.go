package repository

import (
	"context"
	"time"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReminderNotFound is returned when a reminder does not exist in the current scope.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository persists product reminders of authenticated users.
type ReminderRepository interface {
	// FindRemindersByUser returns every reminder of a user, oldest first.
	FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProductReminder, error)

	// FindActiveRemindersByUser returns the active, non-dismissed reminders of a user.
	FindActiveRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProductReminder, error)

	// CreateReminders inserts reminders in one statement.
	CreateReminders(ctx context.Context, reminders []*entity.ProductReminder) error

	// ReplaceReminders makes reminders the complete reminder set of the user.
	ReplaceReminders(ctx context.Context, userID uuid.UUID, reminders []*entity.ProductReminder) error

	// MarkNotified sets notified_at on a reminder.
	MarkNotified(ctx context.Context, userID, reminderID uuid.UUID, at time.Time) error

	// Dismiss sets dismissed_at and deactivates a reminder.
	Dismiss(ctx context.Context, userID, reminderID uuid.UUID, at time.Time) error

	// DismissAll dismisses every reminder of a user.
	DismissAll(ctx context.Context, userID uuid.UUID, at time.Time) error
}
