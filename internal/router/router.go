package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"globetrek/internal/auth"
	"globetrek/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.Manager,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	destinationHandler *handler.DestinationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/", pageHandler.Index)
	e.GET("/about", pageHandler.About)
	e.GET("/forgot_password", pageHandler.ForgotPassword)
	e.GET("/accommodation_finder", pageHandler.AccommodationFinder)

	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	e.GET("/dashboard", pageHandler.Dashboard, sessions.RequireAuthenticated)

	e.GET("/search", destinationHandler.Search)
	e.GET("/destination/:slug", destinationHandler.Detail)
}
