package impl

import (
	"context"
	"testing"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    entity.Preferences
		patch      entity.PreferencePatch
		want       entity.Preferences
		wantErr    error
		wantNotify bool
	}{
		{
			name:       "turns auto open off",
			current:    entity.DefaultPreferences(),
			patch:      entity.PreferencePatch{AutoOpenNearbyStores: ptr(false)},
			want:       entity.Preferences{AutoOpenNearbyStores: false, NotifyFailedSearches: true},
			wantNotify: true,
		},
		{
			name:       "sets price range",
			current:    entity.DefaultPreferences(),
			patch:      entity.PreferencePatch{PriceMin: ptr(2.0), PriceMax: ptr(8.5)},
			want:       entity.Preferences{AutoOpenNearbyStores: true, NotifyFailedSearches: true, PriceMin: ptr(2.0), PriceMax: ptr(8.5)},
			wantNotify: true,
		},
		{
			name:    "rejects inverted price range",
			current: entity.Preferences{PriceMax: ptr(5.0)},
			patch:   entity.PreferencePatch{PriceMin: ptr(6.0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			persistence := mockUsecase.NewMockPersistenceUsecase(t)
			proximity := mockUsecase.NewMockProximityUsecase(t)
			reminders := mockUsecase.NewMockReminderUsecase(t)

			current := tt.current
			persistence.EXPECT().LoadPreferences(ctx).Return(&current, nil).Once()
			if tt.wantErr == nil {
				persistence.EXPECT().SavePreferences(ctx, &tt.want).Return(nil).Once()
			}
			if tt.wantNotify {
				proximity.EXPECT().PreferencesChanged(ctx, &tt.want).Return().Once()
				reminders.EXPECT().PreferencesChanged(ctx, &tt.want).Return().Once()
			}

			svc := NewPreferenceService(PreferenceServiceParams{
				Persistence: persistence,
				Observers:   []usecase.PreferenceObserver{proximity, reminders},
				Logger:      newDiscardLogger(),
			})

			got, err := svc.Update(ctx, &tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				persistence.AssertNotCalled(t, "SavePreferences", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPreferenceService_Get(t *testing.T) {
	ctx := context.Background()
	persistence := mockUsecase.NewMockPersistenceUsecase(t)
	prefs := entity.DefaultPreferences()
	persistence.EXPECT().LoadPreferences(ctx).Return(&prefs, nil).Once()

	svc := NewPreferenceService(PreferenceServiceParams{Persistence: persistence, Logger: newDiscardLogger()})

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.AutoOpenNearbyStores)
}
