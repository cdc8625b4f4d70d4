package handler

import (
	"net/http"

	"shopradar/internal/delivery/http/response"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

// SearchHandler serves product search and the search history.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC}
}

// Search runs a product search from the query string.
func (h *SearchHandler) Search(c echo.Context) error {
	var req usecase.SearchInput
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.searchUC.Search(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// GetHistory returns the recent search terms, newest first.
func (h *SearchHandler) GetHistory(c echo.Context) error {
	terms, err := h.searchUC.RecentSearches(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, terms)
}

// ClearHistory forgets the recent search terms.
func (h *SearchHandler) ClearHistory(c echo.Context) error {
	if err := h.searchUC.ClearSearchHistory(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
