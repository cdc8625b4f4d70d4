// Package handler contains the echo handlers of the shell-facing API.
package handler

import (
	"net/http"

	"shopradar/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the agent is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes and validates the request into req. On failure the error
// response is already written and ok is false.
func bind(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// uuidParam parses a path parameter as UUID. On failure the error response is
// already written and ok is false.
func uuidParam(c echo.Context, name string) (id uuid.UUID, ok bool, err error) {
	id, parseErr := uuid.Parse(c.Param(name))
	if parseErr != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}
