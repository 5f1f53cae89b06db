package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"globetrek/internal/catalog"
)

// DestinationHandler serves destination search and detail pages.
type DestinationHandler struct {
	catalog *catalog.Catalog
}

// NewDestinationHandler creates a new destination handler.
func NewDestinationHandler(cat *catalog.Catalog) *DestinationHandler {
	return &DestinationHandler{catalog: cat}
}

// Search renders destinations whose name contains the query.
func (h *DestinationHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	return c.Render(http.StatusOK, "search_results.html", echo.Map{
		"Query":   query,
		"Results": h.catalog.Search(query),
	})
}

// Detail renders one destination, or a plain 404 body for an unknown slug.
func (h *DestinationHandler) Detail(c echo.Context) error {
	destination, err := h.catalog.Get(c.Param("slug"))
	if err != nil {
		return c.String(http.StatusNotFound, "Destination not found")
	}
	return c.Render(http.StatusOK, "destination_detail.html", echo.Map{
		"Destination": destination,
	})
}
