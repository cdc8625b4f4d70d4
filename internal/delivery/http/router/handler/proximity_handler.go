package handler

import (
	"net/http"

	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
}

// ProximityHandler exposes the store proximity monitor.
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{proximityUC: params.ProximityUC}
}

// DismissRequest closes a prompt, optionally saving the store for later.
type DismissRequest struct {
	Remember bool `json:"remember"`
}

// GetState returns the monitor state with the active prompt.
func (h *ProximityHandler) GetState(c echo.Context) error {
	return response.OK(c, h.proximityUC.State())
}

// Check runs one poll tick now. Location failures leave the prompt untouched.
func (h *ProximityHandler) Check(c echo.Context) error {
	prompt, err := h.proximityUC.Check(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, prompt)
}

// Dismiss closes the prompt of a store.
func (h *ProximityHandler) Dismiss(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "storeId")
	if !ok {
		return err
	}

	var req DismissRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.proximityUC.Dismiss(c.Request().Context(), storeID, req.Remember); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// View closes the prompt of a store and returns the store to open.
func (h *ProximityHandler) View(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "storeId")
	if !ok {
		return err
	}

	store, err := h.proximityUC.View(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, store)
}

// GetSavedStores returns the stores saved for later.
func (h *ProximityHandler) GetSavedStores(c echo.Context) error {
	return response.OK(c, h.proximityUC.SavedStores())
}

// ClearSavedStore removes one saved store.
func (h *ProximityHandler) ClearSavedStore(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "storeId")
	if !ok {
		return err
	}

	h.proximityUC.ClearSavedStore(storeID)

	return c.NoContent(http.StatusNoContent)
}

// ClearSavedStores removes every saved store.
func (h *ProximityHandler) ClearSavedStores(c echo.Context) error {
	h.proximityUC.ClearSavedStores()

	return c.NoContent(http.StatusNoContent)
}
