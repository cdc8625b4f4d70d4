package impl

import (
	"context"
	"time"

	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/repository"

	"github.com/google/uuid"
)

// remoteReminderStore scopes the reminder repository to one user.
type remoteReminderStore struct {
	repo   repository.ReminderRepository
	userID uuid.UUID
}

func newRemoteReminderStore(repo repository.ReminderRepository, userID uuid.UUID) repository.ReminderStore {
	return &remoteReminderStore{repo: repo, userID: userID}
}

func (s *remoteReminderStore) LoadReminders(ctx context.Context) ([]*entity.ProductReminder, error) {
	return s.repo.FindRemindersByUser(ctx, s.userID)
}

func (s *remoteReminderStore) SaveReminders(ctx context.Context, reminders []*entity.ProductReminder) error {
	for _, r := range reminders {
		r.UserID = &s.userID
	}

	return s.repo.ReplaceReminders(ctx, s.userID, reminders)
}

func (s *remoteReminderStore) AddReminder(ctx context.Context, reminder *entity.ProductReminder) error {
	reminder.UserID = &s.userID

	return s.repo.CreateReminders(ctx, []*entity.ProductReminder{reminder})
}

func (s *remoteReminderStore) MarkNotified(ctx context.Context, reminderID uuid.UUID, at time.Time) error {
	return s.repo.MarkNotified(ctx, s.userID, reminderID, at)
}

func (s *remoteReminderStore) Dismiss(ctx context.Context, reminderID uuid.UUID, at time.Time) error {
	return s.repo.Dismiss(ctx, s.userID, reminderID, at)
}

// Clear dismisses every reminder of the user; rows are kept for history.
func (s *remoteReminderStore) Clear(ctx context.Context, at time.Time) error {
	return s.repo.DismissAll(ctx, s.userID, at)
}

// remoteFavoriteStore scopes the favorite repository to one user.
type remoteFavoriteStore struct {
	repo   repository.FavoriteRepository
	userID uuid.UUID
}

func newRemoteFavoriteStore(repo repository.FavoriteRepository, userID uuid.UUID) repository.FavoriteStore {
	return &remoteFavoriteStore{repo: repo, userID: userID}
}

func (s *remoteFavoriteStore) LoadFavorites(ctx context.Context) ([]*entity.FavoriteProduct, error) {
	return s.repo.FindFavoritesByUser(ctx, s.userID)
}

func (s *remoteFavoriteStore) SaveFavorites(ctx context.Context, favorites []*entity.FavoriteProduct) error {
	for _, f := range favorites {
		f.UserID = &s.userID
	}

	return s.repo.ReplaceFavorites(ctx, s.userID, favorites)
}

func (s *remoteFavoriteStore) AddFavorite(ctx context.Context, favorite *entity.FavoriteProduct) error {
	favorite.UserID = &s.userID

	return s.repo.CreateFavorites(ctx, []*entity.FavoriteProduct{favorite})
}

func (s *remoteFavoriteStore) RemoveFavorite(ctx context.Context, productID uuid.UUID) error {
	return s.repo.DeleteFavorite(ctx, s.userID, productID)
}

func (s *remoteFavoriteStore) Clear(ctx context.Context) error {
	return s.repo.DeleteFavoritesByUser(ctx, s.userID)
}
