package handler

import (
	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectionsHandlerParams holds dependencies for DirectionsHandler, injected by Fx.
type DirectionsHandlerParams struct {
	fx.In

	DirectionsUC usecase.DirectionsUsecase
}

// DirectionsHandler serves routes to stores.
type DirectionsHandler struct {
	directionsUC usecase.DirectionsUsecase
}

// NewDirectionsHandler is the constructor for DirectionsHandler
func NewDirectionsHandler(params DirectionsHandlerParams) *DirectionsHandler {
	return &DirectionsHandler{directionsUC: params.DirectionsUC}
}

// GetDirections returns a route. Without an origin the route starts at the
// current fix. A missing route is a NO_ROUTE 404, not an empty result.
func (h *DirectionsHandler) GetDirections(c echo.Context) error {
	var req usecase.DirectionsInput
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.directionsUC.GetDirections(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
