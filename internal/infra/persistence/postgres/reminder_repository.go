package postgres

import (
	"context"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the domain.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindRemindersByUser returns every reminder of a user, oldest first.
func (repo *reminderRepository) FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProductReminder, error) {
	var reminderModels []*model.ProductReminderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&reminderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reminders by user")
	}

	return toReminderDomains(reminderModels), nil
}

// FindActiveRemindersByUser returns the active, non-dismissed reminders of a user.
func (repo *reminderRepository) FindActiveRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProductReminder, error) {
	var reminderModels []*model.ProductReminderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND dismissed_at IS NULL", userID, true).
		Order("created_at ASC").
		Find(&reminderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active reminders by user")
	}

	return toReminderDomains(reminderModels), nil
}

// CreateReminders inserts reminders in one statement.
func (repo *reminderRepository) CreateReminders(ctx context.Context, reminders []*entity.ProductReminder) error {
	if len(reminders) == 0 {
		return nil
	}

	reminderModels := make([]*model.ProductReminderModel, 0, len(reminders))
	for _, r := range reminders {
		reminderModels = append(reminderModels, fromReminderDomain(r))
	}

	if err := repo.db.WithContext(ctx).Create(&reminderModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("reminder references an unknown user, product or store")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reminder information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminders")
	}

	return nil
}

// ReplaceReminders makes reminders the complete reminder set of the user.
func (repo *reminderRepository) ReplaceReminders(ctx context.Context, userID uuid.UUID, reminders []*entity.ProductReminder) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.ProductReminderModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete reminders")
		}

		return NewReminderRepository(tx).CreateReminders(ctx, reminders)
	})
}

// MarkNotified sets notified_at on a reminder of the user.
func (repo *reminderRepository) MarkNotified(ctx context.Context, userID, reminderID uuid.UUID, at time.Time) error {
	return repo.updateOne(ctx, userID, reminderID, map[string]any{"notified_at": at})
}

// Dismiss sets dismissed_at and deactivates a reminder of the user.
func (repo *reminderRepository) Dismiss(ctx context.Context, userID, reminderID uuid.UUID, at time.Time) error {
	return repo.updateOne(ctx, userID, reminderID, map[string]any{"dismissed_at": at, "is_active": false})
}

// DismissAll dismisses every active reminder of the user.
func (repo *reminderRepository) DismissAll(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductReminderModel{}).
		Where("user_id = ? AND dismissed_at IS NULL", userID).
		Updates(map[string]any{"dismissed_at": at, "is_active": false}).Error
	if err != nil {
		return errors.Wrap(err, "failed to dismiss reminders")
	}

	return nil
}

func (repo *reminderRepository) updateOne(ctx context.Context, userID, reminderID uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductReminderModel{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reminder")
	}

	// If no rows were affected, the reminder does not belong to the user.
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReminderDomain converts a GORM ProductReminderModel to a domain ProductReminder entity.
func toReminderDomain(data *model.ProductReminderModel) *entity.ProductReminder {
	if data == nil {
		return nil
	}

	userID := data.UserID

	return &entity.ProductReminder{
		ID:          data.ID,
		UserID:      &userID,
		SearchTerm:  data.SearchTerm,
		ProductID:   data.ProductID,
		StoreID:     data.StoreID,
		CreatedAt:   data.CreatedAt,
		NotifiedAt:  data.NotifiedAt,
		DismissedAt: data.DismissedAt,
		IsActive:    data.IsActive,
	}
}

func toReminderDomains(data []*model.ProductReminderModel) []*entity.ProductReminder {
	reminders := make([]*entity.ProductReminder, 0, len(data))
	for _, reminderM := range data {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders
}

// fromReminderDomain converts a domain ProductReminder entity to a GORM ProductReminderModel.
func fromReminderDomain(data *entity.ProductReminder) *model.ProductReminderModel {
	if data == nil {
		return nil
	}

	reminderM := &model.ProductReminderModel{
		ID:          data.ID,
		SearchTerm:  data.SearchTerm,
		ProductID:   data.ProductID,
		StoreID:     data.StoreID,
		NotifiedAt:  data.NotifiedAt,
		DismissedAt: data.DismissedAt,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
	if data.UserID != nil {
		reminderM.UserID = *data.UserID
	}

	return reminderM
}
