package postgres

import (
	"context"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindPreferences returns the stored preferences of a user.
func (repo *profileRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("auth_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &entity.Preferences{
		AutoOpenNearbyStores:  profileM.AutoOpenNearbyStores,
		NotifyFailedSearches:  profileM.NotifyFailedSearches,
		SearchProximityMeters: profileM.SearchProximity,
		PriceMin:              profileM.PriceMin,
		PriceMax:              profileM.PriceMax,
	}, nil
}

// UpsertPreferences stores the preferences of a user, creating the profile when missing.
func (repo *profileRepository) UpsertPreferences(ctx context.Context, userID uuid.UUID, prefs *entity.Preferences) error {
	profileM := &model.ProfileModel{
		AuthID:               userID,
		AutoOpenNearbyStores: prefs.AutoOpenNearbyStores,
		NotifyFailedSearches: prefs.NotifyFailedSearches,
		SearchProximity:      prefs.SearchProximityMeters,
		PriceMin:             prefs.PriceMin,
		PriceMax:             prefs.PriceMax,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "auth_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"auto_open_nearby_stores",
				"notify_failed_searches",
				"search_proximity",
				"price_min",
				"price_max",
				"updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid preference values")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save preferences")
	}

	return nil
}
