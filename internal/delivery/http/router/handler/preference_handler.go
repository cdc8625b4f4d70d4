package handler

import (
	"shopradar/internal/delivery/http/response"
	"shopradar/internal/domain/entity"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
}

// PreferenceHandler reads and updates the settings of the current scope.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{preferenceUC: params.PreferenceUC}
}

// UpdatePreferencesRequest is a partial update of the preferences.
type UpdatePreferencesRequest struct {
	AutoOpenNearbyStores  *bool    `json:"auto_open_nearby_stores,omitempty"`
	NotifyFailedSearches  *bool    `json:"notify_failed_searches,omitempty"`
	SearchProximityMeters *float64 `json:"search_proximity,omitempty" validate:"omitempty,gt=0"`
	PriceMin              *float64 `json:"price_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax              *float64 `json:"price_max,omitempty" validate:"omitempty,gte=0"`
}

// GetPreferences returns the current preferences.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	prefs, err := h.preferenceUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, prefs)
}

// UpdatePreferences applies a partial update and returns the result.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	prefs, err := h.preferenceUC.Update(c.Request().Context(), &entity.PreferencePatch{
		AutoOpenNearbyStores:  req.AutoOpenNearbyStores,
		NotifyFailedSearches:  req.NotifyFailedSearches,
		SearchProximityMeters: req.SearchProximityMeters,
		PriceMin:              req.PriceMin,
		PriceMax:              req.PriceMax,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, prefs)
}
