// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// SignInInput is the sign-in event forwarded by the native shell.
type SignInInput struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// SignInResult is the outcome of a sign-in.
type SignInResult struct {
	Session   entity.Session          `json:"session"`
	Migration *entity.MigrationResult `json:"migration,omitempty"`
}

// SessionUsecase tracks sign-in and sign-out events of the device.
type SessionUsecase interface {
	// SignIn verifies the access token, migrates guest data and switches to the user scope.
	SignIn(ctx context.Context, accessToken string) (*SignInResult, error)

	// SignOut returns the device to guest scope.
	SignOut(ctx context.Context) error

	// Current returns the current session.
	Current() entity.Session

	// RegisterDeviceToken stores the push token of the device.
	RegisterDeviceToken(ctx context.Context, token string) error
}
