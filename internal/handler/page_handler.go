package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"globetrek/internal/auth"
	"globetrek/internal/catalog"
)

// PageHandler serves the static-ish pages: landing, about, dashboard,
// forgot password and the accommodation finder.
type PageHandler struct {
	sessions *auth.Manager
	catalog  *catalog.Catalog
}

// NewPageHandler creates a new page handler.
func NewPageHandler(sessions *auth.Manager, cat *catalog.Catalog) *PageHandler {
	return &PageHandler{sessions: sessions, catalog: cat}
}

// Index renders the landing page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Flashes": h.sessions.PopFlashes(c),
	})
}

// About renders the about page.
func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

// Dashboard renders the logged-in landing page. The route is gated by
// Manager.RequireAuthenticated, so an identity is always present here.
func (h *PageHandler) Dashboard(c echo.Context) error {
	ident, _ := h.sessions.Current(c)
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Username": ident.Username,
		"Flashes":  h.sessions.PopFlashes(c),
	})
}

// ForgotPassword renders the placeholder reset page. There is no backing
// reset flow.
func (h *PageHandler) ForgotPassword(c echo.Context) error {
	return c.Render(http.StatusOK, "forgot_password.html", nil)
}

// AccommodationFinder renders the fixed sample accommodations.
func (h *PageHandler) AccommodationFinder(c echo.Context) error {
	return c.Render(http.StatusOK, "accommodations_finder.html", echo.Map{
		"Accommodations": h.catalog.Accommodations(),
	})
}
