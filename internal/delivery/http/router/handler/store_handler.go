package handler

import (
	"net/http"
	"strconv"

	"shopradar/internal/delivery/http/response"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	QRCodes service.QRCodeService
}

// StoreHandler serves stores, their deep-link QR codes and scanned QR content.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	qrCodes service.QRCodeService
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		qrCodes: params.QRCodes,
	}
}

// ResolveQRRequest carries the content of a scanned QR code.
type ResolveQRRequest struct {
	Content string `json:"content" validate:"required"`
}

// ResolveQRResponse is the store a scanned QR code points to.
type ResolveQRResponse struct {
	Store     *entity.NearbyStore `json:"store"`
	ProductID *uuid.UUID          `json:"product_id,omitempty"`
}

// ListNearby returns active stores, nearest first when a fix is available.
// ?limit=N caps the list.
func (h *StoreHandler) ListNearby(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	stores, err := h.storeUC.Nearby(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stores)
}

// GetStore returns a store and records the view.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	store, err := h.storeUC.Get(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, store)
}

// ListRecentlyViewed returns the recently viewed stores, most recent first.
func (h *StoreHandler) ListRecentlyViewed(c echo.Context) error {
	stores, err := h.storeUC.RecentlyViewed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stores)
}

// GetStoreQR renders the deep-link QR code of a store as PNG.
// ?product=<id> focuses the link on a product.
func (h *StoreHandler) GetStoreQR(c echo.Context) error {
	storeID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var productID *uuid.UUID
	if raw := c.QueryParam("product"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid product")
		}
		productID = &parsed
	}

	png, err := h.storeUC.QRCode(c.Request().Context(), storeID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR turns scanned QR content into the store it links to.
func (h *StoreHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	storeID, productID, err := h.qrCodes.ParseStoreQR(req.Content)
	if err != nil {
		return response.BadRequest(c, "INVALID_QR_CODE", "The QR code does not link to a store")
	}

	store, err := h.storeUC.Get(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ResolveQRResponse{Store: store, ProductID: productID})
}
