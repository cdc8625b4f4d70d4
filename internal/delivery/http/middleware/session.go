package middleware

import (
	"log/slog"

	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware exposes the auth state of the device to handlers
type SessionMiddleware struct {
	auth   usecase.AuthState
	logger *slog.Logger
}

// NewSessionMiddleware creates the session middleware
func NewSessionMiddleware(auth usecase.AuthState, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, logger: logger}
}

// Attach tags the request-scoped logger with the signed-in user, if any.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := m.auth.Current()
		if session.IsAuthenticated() {
			ctx := c.Request().Context()
			logger := deliverycontext.Logger(ctx, m.logger).With(slog.String("user_id", session.UserID.String()))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
		}

		return next(c)
	}
}

// RequireUser rejects requests made while the device is in guest scope.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.auth.Current().IsAuthenticated() {
			return response.Unauthorized(c, "NOT_SIGNED_IN", "Sign in is required")
		}

		return next(c)
	}
}
