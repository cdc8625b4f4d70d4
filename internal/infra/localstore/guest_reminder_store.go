package localstore

import (
	"context"
	"sync"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"

	"github.com/google/uuid"
)

// guestReminderStore keeps guest reminders as one JSON list in the local store.
type guestReminderStore struct {
	local repository.LocalStore
	mu    sync.Mutex
}

// NewGuestReminderStore creates the reminder collection of the signed-out device.
func NewGuestReminderStore(local repository.LocalStore) repository.ReminderStore {
	return &guestReminderStore{local: local}
}

func (s *guestReminderStore) LoadReminders(ctx context.Context) ([]*entity.ProductReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[entity.ProductReminder](ctx, s.local, constants.LocalKeyGuestReminders)
}

func (s *guestReminderStore) SaveReminders(ctx context.Context, reminders []*entity.ProductReminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveList(ctx, s.local, constants.LocalKeyGuestReminders, reminders)
}

func (s *guestReminderStore) AddReminder(ctx context.Context, reminder *entity.ProductReminder) error {
	return s.update(ctx, func(reminders []*entity.ProductReminder) ([]*entity.ProductReminder, error) {
		return append(reminders, reminder), nil
	})
}

func (s *guestReminderStore) MarkNotified(ctx context.Context, reminderID uuid.UUID, at time.Time) error {
	return s.updateOne(ctx, reminderID, func(r *entity.ProductReminder) {
		r.NotifiedAt = &at
	})
}

func (s *guestReminderStore) Dismiss(ctx context.Context, reminderID uuid.UUID, at time.Time) error {
	return s.updateOne(ctx, reminderID, func(r *entity.ProductReminder) {
		r.DismissedAt = &at
		r.IsActive = false
	})
}

// Clear forgets every guest reminder.
func (s *guestReminderStore) Clear(ctx context.Context, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.local.Delete(ctx, constants.LocalKeyGuestReminders)
}

func (s *guestReminderStore) updateOne(ctx context.Context, reminderID uuid.UUID, apply func(*entity.ProductReminder)) error {
	return s.update(ctx, func(reminders []*entity.ProductReminder) ([]*entity.ProductReminder, error) {
		for _, r := range reminders {
			if r.ID == reminderID {
				apply(r)

				return reminders, nil
			}
		}

		return nil, repository.ErrReminderNotFound
	})
}

func (s *guestReminderStore) update(ctx context.Context, fn func([]*entity.ProductReminder) ([]*entity.ProductReminder, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders, err := loadList[entity.ProductReminder](ctx, s.local, constants.LocalKeyGuestReminders)
	if err != nil {
		return err
	}
	if reminders, err = fn(reminders); err != nil {
		return err
	}

	return saveList(ctx, s.local, constants.LocalKeyGuestReminders, reminders)
}
