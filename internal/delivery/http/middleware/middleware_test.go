package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockUsecase "shopradar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "domain error keeps details",
			err:         errors.Wrap(domainerrors.ErrNoRoute.WithDetails("walking"), "get directions"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NO_ROUTE",
			wantDetails: "walking",
		},
		{
			name:       "server-side domain error hides details",
			err:        domainerrors.ErrNetworkFailure.WithDetails("dial tcp 10.0.0.1:443"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "NETWORK_FAILURE",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/directions", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestSessionMiddleware_RequireUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		session    entity.Session
		wantStatus int
		wantCalled bool
	}{
		{name: "guest is rejected", session: entity.Session{}, wantStatus: http.StatusUnauthorized},
		{name: "user passes", session: entity.Session{UserID: &userID}, wantStatus: http.StatusNoContent, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := mockUsecase.NewMockAuthState(t)
			auth.EXPECT().Current().Return(tt.session)

			called := false
			next := func(c echo.Context) error {
				called = true

				return c.NoContent(http.StatusNoContent)
			}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/session/sign-out", nil), rec)

			m := NewSessionMiddleware(auth, discardLogger())
			require.NoError(t, m.RequireUser(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
