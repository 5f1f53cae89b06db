package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"globetrek/internal/auth"
	"globetrek/internal/cache"
	"globetrek/internal/catalog"
	"globetrek/internal/config"
	"globetrek/internal/db"
	"globetrek/internal/handler"
	"globetrek/internal/model"
	"globetrek/internal/render"
	"globetrek/internal/repository"
	"globetrek/internal/router"
	"globetrek/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if cfg.SessionSecret == "" {
		logger.Fatal("SESSION_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := render.New()
	if err != nil {
		logger.Fatalf("renderer init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		logger.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)

	signer := auth.NewCookieSigner(cfg.SessionSecret)
	sessions := auth.NewManager(cacheClient, signer)

	authService := service.NewAuthService(userRepo, logger)
	destinations := catalog.New()

	pageHandler := handler.NewPageHandler(sessions, destinations)
	authHandler := handler.NewAuthHandler(authService, sessions)
	destinationHandler := handler.NewDestinationHandler(destinations)

	router.Register(e, sessions, pageHandler, authHandler, destinationHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server start: %v", err)
	}
}
