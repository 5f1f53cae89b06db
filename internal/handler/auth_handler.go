package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"globetrek/internal/auth"
	apperrors "globetrek/internal/errors"
	"globetrek/internal/service"
)

// AuthHandler handles the register, login and logout pages.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{
		"Flashes": h.sessions.PopFlashes(c),
	})
}

// Register creates the account and redirects to the login page, or back to
// the form with a flash message on a duplicate email or username.
func (h *AuthHandler) Register(c echo.Context) error {
	email := c.FormValue("email")
	username := c.FormValue("username")
	password := c.FormValue("password")

	if _, err := h.authService.Register(c.Request().Context(), email, username, password); err != nil {
		if flashErr := h.sessions.Flash(c, apperrors.FlashText(err)); flashErr != nil {
			return flashErr
		}
		return c.Redirect(http.StatusFound, "/register")
	}

	if err := h.sessions.Flash(c, "Registration successful!"); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Flashes": h.sessions.PopFlashes(c),
	})
}

// Login authenticates and starts a session, or redirects back to the form
// with a flash message. Unknown username and wrong password produce the same
// message.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		if flashErr := h.sessions.Flash(c, apperrors.FlashText(err)); flashErr != nil {
			return flashErr
		}
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.sessions.Start(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and redirects home.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
