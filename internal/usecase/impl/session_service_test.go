package impl

import (
	"context"
	"testing"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	mockSvc "shopradar/internal/mocks/service"
	mockUsecase "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	auth        usecase.AuthState
	persistence *mockUsecase.MockPersistenceUsecase
	tokens      *mockSvc.MockTokenService
	local       *memoryLocalStore
	clock       *clock.Mock
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC))

	fx := sessionServiceFixtures{
		auth:        NewAuthState(),
		persistence: mockUsecase.NewMockPersistenceUsecase(t),
		tokens:      mockSvc.NewMockTokenService(t),
		local:       newMemoryLocalStore(),
		clock:       clk,
	}
	fx.service = NewSessionService(fx.auth, fx.persistence, fx.tokens, fx.local, clk, newDiscardLogger())

	return fx
}

func TestSessionService_SignIn(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(fx sessionServiceFixtures)
		wantErr       error
		wantMigration *entity.MigrationResult
	}{
		{
			name: "migrates guest data and switches scope",
			setupMock: func(fx sessionServiceFixtures) {
				fx.tokens.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{UserID: userID}, nil).Once()
				fx.persistence.EXPECT().MigrateGuestToUser(mock.Anything, userID).
					Return(&entity.MigrationResult{Favorites: 2, Reminders: 1}, nil).Once()
			},
			wantMigration: &entity.MigrationResult{Favorites: 2, Reminders: 1},
		},
		{
			name: "failed migration still signs in",
			setupMock: func(fx sessionServiceFixtures) {
				fx.tokens.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{UserID: userID}, nil).Once()
				fx.persistence.EXPECT().MigrateGuestToUser(mock.Anything, userID).
					Return(nil, domainerrors.ErrMigrationFailed).Once()
			},
		},
		{
			name: "invalid token",
			setupMock: func(fx sessionServiceFixtures) {
				fx.tokens.EXPECT().ValidateAccessToken("good-token").Return(nil, errors.New("token is expired")).Once()
			},
			wantErr: domainerrors.ErrInvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestSessionService(t)
			tt.setupMock(fx)

			var events []entity.AuthEvent
			fx.auth.Subscribe(func(_ context.Context, event entity.AuthEvent, _ entity.Session) {
				events = append(events, event)
			})

			result, err := fx.service.SignIn(context.Background(), "good-token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, fx.service.Current().IsAuthenticated())
				assert.Empty(t, events)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMigration, result.Migration)
			require.NotNil(t, result.Session.UserID)
			assert.Equal(t, userID, *result.Session.UserID)
			assert.Equal(t, fx.clock.Now(), *result.Session.SignedInAt)
			assert.Equal(t, []entity.AuthEvent{entity.AuthEventSignedIn}, events)
		})
	}
}

func TestSessionService_SignIn_SameUserRetriesMigration(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	var events []entity.AuthEvent
	fx.auth.Subscribe(func(_ context.Context, event entity.AuthEvent, _ entity.Session) {
		events = append(events, event)
	})

	fx.tokens.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: userID}, nil).Twice()
	fx.persistence.EXPECT().MigrateGuestToUser(mock.Anything, userID).
		Return(nil, domainerrors.ErrMigrationFailed).Once()
	fx.persistence.EXPECT().MigrateGuestToUser(mock.Anything, userID).
		Return(&entity.MigrationResult{Reminders: 2}, nil).Once()

	first, err := fx.service.SignIn(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, first.Migration)

	fx.clock.Add(time.Minute)
	second, err := fx.service.SignIn(ctx, "token")
	require.NoError(t, err)
	require.NotNil(t, second.Migration)
	assert.Equal(t, 2, second.Migration.Reminders)
	assert.Equal(t, *first.Session.SignedInAt, *second.Session.SignedInAt)
	assert.Equal(t, []entity.AuthEvent{entity.AuthEventSignedIn}, events)
}

func TestSessionService_SignOut(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	// Signing out as guest does nothing.
	require.NoError(t, fx.service.SignOut(ctx))

	userID := uuid.New()
	fx.auth.Set(ctx, entity.Session{UserID: &userID})

	var events []entity.AuthEvent
	fx.auth.Subscribe(func(_ context.Context, event entity.AuthEvent, _ entity.Session) {
		events = append(events, event)
	})

	require.NoError(t, fx.service.SignOut(ctx))
	assert.False(t, fx.service.Current().IsAuthenticated())
	assert.Equal(t, []entity.AuthEvent{entity.AuthEventSignedOut}, events)
}

func TestSessionService_RegisterDeviceToken(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	err := fx.service.RegisterDeviceToken(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, fx.service.RegisterDeviceToken(ctx, " fcm-token "))

	var token string
	found, err := readLocalJSON(ctx, fx.local, constants.LocalKeyDevicePushToken, &token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "fcm-token", token)
}
