package impl

import (
	"context"
	"log/slog"
	"strings"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type sessionService struct {
	auth        usecase.AuthState
	persistence usecase.PersistenceUsecase
	tokens      service.TokenService
	local       repository.LocalStore
	clock       clock.Clock
	logger      *slog.Logger
}

// NewSessionService creates the session service handling sign-in and sign-out events.
func NewSessionService(
	auth usecase.AuthState,
	persistence usecase.PersistenceUsecase,
	tokens service.TokenService,
	local repository.LocalStore,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:        auth,
		persistence: persistence,
		tokens:      tokens,
		local:       local,
		clock:       clk,
		logger:      logger,
	}
}

// SignIn verifies the token, migrates guest data and switches to the user scope.
// A failed migration keeps the guest data and does not fail the sign-in. Signing
// in again as the current user keeps the session and retries the migration.
func (s *sessionService) SignIn(ctx context.Context, accessToken string) (*usecase.SignInResult, error) {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		s.logger.Warn("Rejected sign-in with invalid access token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidAccessToken
	}

	userID := claims.UserID
	result := &usecase.SignInResult{Migration: s.migrate(ctx, userID)}

	current := s.auth.Current()
	if current.UserID != nil && *current.UserID == userID {
		result.Session = current

		return result, nil
	}

	now := s.clock.Now()
	result.Session = entity.Session{UserID: &userID, SignedInAt: &now}
	s.auth.Set(ctx, result.Session)

	s.logger.Info("User signed in", slog.String("user_id", userID.String()))

	return result, nil
}

// migrate moves guest data to the user. Nil means the guest data was kept.
func (s *sessionService) migrate(ctx context.Context, userID uuid.UUID) *entity.MigrationResult {
	migration, err := s.persistence.MigrateGuestToUser(ctx, userID)
	if err != nil {
		s.logger.Error("[Sync] guest data not migrated",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	return migration
}

// SignOut returns the device to guest scope.
func (s *sessionService) SignOut(ctx context.Context) error {
	current := s.auth.Current()
	if !current.IsAuthenticated() {
		return nil
	}

	s.auth.Set(ctx, entity.Session{})
	s.logger.Info("User signed out", slog.String("user_id", current.UserID.String()))

	return nil
}

// Current returns the current session.
func (s *sessionService) Current() entity.Session {
	return s.auth.Current()
}

// RegisterDeviceToken stores the push token used for nearby notifications.
func (s *sessionService) RegisterDeviceToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device token is required")
	}

	return writeLocalJSON(ctx, s.local, constants.LocalKeyDevicePushToken, token)
}
