package handler

import (
	"net/http"

	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler manages the favorite products of the current scope.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// AddFavoriteRequest favorites a product.
type AddFavoriteRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// ListFavorites returns the favorites with their display fields.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, favorites)
}

// AddFavorite favorites a product.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req AddFavoriteRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	favorite, err := h.favoriteUC.Add(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

// GetFavoriteStatus reports whether a product is favorited.
func (h *FavoriteHandler) GetFavoriteStatus(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	favorited, err := h.favoriteUC.IsFavorited(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"favorited": favorited})
}

// RemoveFavorite removes a product from the favorites.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearFavorites removes every favorite.
func (h *FavoriteHandler) ClearFavorites(c echo.Context) error {
	if err := h.favoriteUC.Clear(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
