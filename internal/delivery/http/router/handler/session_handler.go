package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler receives the auth events of the native shell.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// DeviceTokenRequest registers the push token of the device.
type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// GetSession returns the current auth state.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.OK(c, h.sessionUC.Current())
}

// SignIn switches the device to the user of the access token and migrates guest data.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req usecase.SignInInput
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.sessionUC.SignIn(c.Request().Context(), req.AccessToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.Migration != nil && result.Migration.Total() > 0 {
		deliverycontext.Logger(c.Request().Context(), h.logger).Info("Guest data synced on sign in",
			slog.Int("favorites", result.Migration.Favorites),
			slog.Int("reminders", result.Migration.Reminders),
		)
	}

	return response.OK(c, result)
}

// SignOut returns the device to guest scope.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.sessionUC.SignOut(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterDeviceToken stores the push token of the device.
func (h *SessionHandler) RegisterDeviceToken(c echo.Context) error {
	var req DeviceTokenRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.sessionUC.RegisterDeviceToken(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
