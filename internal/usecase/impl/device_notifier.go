package impl

import (
	"context"
	"log/slog"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
)

// deviceNotifier pushes notifications to the push token registered by the device.
type deviceNotifier struct {
	local  repository.LocalStore
	push   service.NotificationService
	logger *slog.Logger
}

func newDeviceNotifier(local repository.LocalStore, push service.NotificationService, logger *slog.Logger) *deviceNotifier {
	return &deviceNotifier{local: local, push: push, logger: logger}
}

// notify is best-effort: a missing token or a failed push is only logged.
func (n *deviceNotifier) notify(ctx context.Context, title, body string, data map[string]string) {
	if n.push == nil {
		return
	}

	var token string
	found, err := readLocalJSON(ctx, n.local, constants.LocalKeyDevicePushToken, &token)
	if err != nil {
		n.logger.Warn("Failed to read device push token", slog.Any("error", err))

		return
	}
	if !found || token == "" {
		return
	}

	err = n.push.SendSingleNotification(ctx, token, title, body, data)
	if errors.Is(err, service.ErrInvalidPushToken) {
		n.logger.Info("Discarding rejected device push token")
		if err := n.local.Delete(ctx, constants.LocalKeyDevicePushToken); err != nil {
			n.logger.Warn("Failed to delete device push token", slog.Any("error", err))
		}

		return
	}
	if err != nil {
		n.logger.Warn("Failed to send push notification",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}
