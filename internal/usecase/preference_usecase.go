package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// PreferenceUsecase reads and updates the settings of the current scope.
type PreferenceUsecase interface {
	Get(ctx context.Context) (*entity.Preferences, error)
	Update(ctx context.Context, patch *entity.PreferencePatch) (*entity.Preferences, error)
}

// PreferenceObserver is notified after the preferences of the current scope change.
type PreferenceObserver interface {
	PreferencesChanged(ctx context.Context, prefs *entity.Preferences)
}
