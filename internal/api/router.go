package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/auth-profile-api/docs"
	"github.com/99minutos/auth-profile-api/internal/api/handler"
	"github.com/99minutos/auth-profile-api/internal/api/middleware"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

// Dependencies are the services and probes the HTTP layer is built on.
type Dependencies struct {
	AuthService     ports.AuthService
	UserService     ports.UserService
	LocationService ports.LocationService
	HealthChecks    []handler.DependencyCheck
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(deps.Logger))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	locationHandler := handler.NewLocationHandler(deps.LocationService)
	requireAuth := middleware.Auth(deps.AuthService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/location", locationHandler.Locate)

	// --- Authenticated routes ---
	e.POST("/logout", authHandler.Logout, requireAuth)
	e.POST("/profile-update", userHandler.ProfileUpdate, requireAuth)
	e.POST("/me", userHandler.Me, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
