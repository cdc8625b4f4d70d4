package repository

import (
	"context"

	"shopradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists per-user preference flags.
type ProfileRepository interface {
	// FindPreferences returns the stored preferences of a user.
	FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error)

	// UpsertPreferences stores the preferences of a user, creating the profile when missing.
	UpsertPreferences(ctx context.Context, userID uuid.UUID, prefs *entity.Preferences) error
}
