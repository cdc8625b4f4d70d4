package impl

import (
	"context"
	"log/slog"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/usecase"

	"go.uber.org/fx"
)

// PreferenceServiceParams holds the dependencies of the preference service.
type PreferenceServiceParams struct {
	fx.In

	Persistence usecase.PersistenceUsecase
	Observers   []usecase.PreferenceObserver `group:"preference_observers"`
	Logger      *slog.Logger
}

type preferenceService struct {
	persistence usecase.PersistenceUsecase
	observers   []usecase.PreferenceObserver
	logger      *slog.Logger
}

// NewPreferenceService creates the preference service.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		persistence: params.Persistence,
		observers:   params.Observers,
		logger:      params.Logger,
	}
}

// Get returns the preferences of the current scope.
func (s *preferenceService) Get(ctx context.Context) (*entity.Preferences, error) {
	return s.persistence.LoadPreferences(ctx)
}

// Update applies a partial update and notifies the monitors.
func (s *preferenceService) Update(ctx context.Context, patch *entity.PreferencePatch) (*entity.Preferences, error) {
	current, err := s.persistence.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if updated.PriceMin != nil && updated.PriceMax != nil && *updated.PriceMin > *updated.PriceMax {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price_min must not exceed price_max")
	}

	if err := s.persistence.SavePreferences(ctx, &updated); err != nil {
		return nil, err
	}

	for _, observer := range s.observers {
		observer.PreferencesChanged(ctx, &updated)
	}

	s.logger.Debug("Preferences updated",
		slog.Bool("auto_open_nearby_stores", updated.AutoOpenNearbyStores),
		slog.Bool("notify_failed_searches", updated.NotifyFailedSearches),
	)

	return &updated, nil
}
