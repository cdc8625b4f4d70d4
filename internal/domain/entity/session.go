package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthEvent is an auth state transition.
type AuthEvent string

const (
	AuthEventSignedIn  AuthEvent = "SIGNED_IN"
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"
)

// Session is the current auth state of the device. A nil UserID means guest.
type Session struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	SignedInAt *time.Time `json:"signed_in_at,omitempty"`
}

// IsAuthenticated reports whether a user is signed in.
func (s Session) IsAuthenticated() bool {
	return s.UserID != nil
}

// MigrationResult counts the guest records copied to a user on sign-in.
type MigrationResult struct {
	Favorites int `json:"favorites"`
	Reminders int `json:"reminders"`
}

// Total returns the number of migrated records.
func (r MigrationResult) Total() int {
	return r.Favorites + r.Reminders
}
