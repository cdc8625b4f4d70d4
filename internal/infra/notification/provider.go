// Package notification delivers push notifications to the device.
package notification

import (
	"context"
	"log/slog"

	"shopradar/config"
	"shopradar/internal/domain/service"

	"go.uber.org/fx"
)

// noopService drops notifications when push is not configured.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(_ context.Context, _, title, _ string, _ map[string]string) error {
	s.logger.Debug("[Push] Push disabled, skipping notification", slog.String("title", title))

	return nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase service when credentials are configured.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
