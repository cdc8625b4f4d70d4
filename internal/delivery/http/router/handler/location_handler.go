package handler

import (
	"log/slog"
	"strconv"

	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/delivery/http/response"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/infra/geolocation"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Bridge     *geolocation.Bridge
	Logger     *slog.Logger
}

// LocationHandler serves the sampler and receives the readings of the native shell.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	bridge     *geolocation.Bridge
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		bridge:     params.Bridge,
		logger:     params.Logger,
	}
}

// ReadingRequest is a raw position reading from the device.
type ReadingRequest struct {
	Lat            float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng            float64 `json:"lng" validate:"gte=-180,lte=180"`
	AccuracyMeters float64 `json:"accuracy_meters" validate:"gte=0"`
	TimestampMs    int64   `json:"timestamp" validate:"gt=0"`
}

// ReadingErrorRequest is a failure reported by the device position API.
type ReadingErrorRequest struct {
	Kind    domainerrors.PositionErrorKind `json:"kind" validate:"required,oneof=permission-denied timeout unavailable"`
	Message string                         `json:"message"`
}

// AvailabilityRequest reports whether the device has a position capability.
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// GetLocation returns the current fix. ?refresh=true bypasses the cache.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	fix, err := h.locationUC.GetLocation(c.Request().Context(), refresh)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, fix)
}

// GetState returns the sampler status.
func (h *LocationHandler) GetState(c echo.Context) error {
	return response.OK(c, h.locationUC.State())
}

// PushReading answers the pending position requests with a reading.
func (h *LocationHandler) PushReading(c echo.Context) error {
	var req ReadingRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	answered := h.bridge.Push(entity.LocationFix{
		Lat:            req.Lat,
		Lng:            req.Lng,
		AccuracyMeters: req.AccuracyMeters,
		TimestampMs:    req.TimestampMs,
	})

	return response.OK(c, map[string]int{"answered": answered})
}

// PushError fails the pending position requests.
func (h *LocationHandler) PushError(c echo.Context) error {
	var req ReadingErrorRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	answered := h.bridge.PushError(req.Kind, req.Message)
	deliverycontext.Logger(c.Request().Context(), h.logger).Info("Device reported a position error",
		slog.String("kind", string(req.Kind)),
		slog.Int("answered", answered),
	)

	return response.OK(c, map[string]int{"answered": answered})
}

// SetAvailability records whether the device can report positions at all.
func (h *LocationHandler) SetAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	h.bridge.SetAvailable(*req.Available)

	return response.OK(c, map[string]bool{"available": *req.Available})
}

// GetPending returns the number of position requests waiting for a reading,
// so the shell knows when to start watching the position.
func (h *LocationHandler) GetPending(c echo.Context) error {
	return response.OK(c, map[string]int{"waiting": h.bridge.Waiting()})
}
