package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidPushToken is returned when the push service no longer accepts a device token.
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	// It fails with ErrInvalidPushToken when the token must be discarded.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
