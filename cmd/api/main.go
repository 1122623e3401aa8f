// @title        Auth Profile API
// @version      1.0
// @description  Registration, session tokens and profile management.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/99minutos/auth-profile-api/internal/api"
	"github.com/99minutos/auth-profile-api/internal/api/handler"
	"github.com/99minutos/auth-profile-api/internal/core/service"
	mongodb "github.com/99minutos/auth-profile-api/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/auth-profile-api/internal/infrastructure/db/redis"
	"github.com/99minutos/auth-profile-api/internal/infrastructure/geo"
	"github.com/99minutos/auth-profile-api/internal/infrastructure/token"
	"github.com/99minutos/auth-profile-api/internal/pkg/config"
	"github.com/99minutos/auth-profile-api/pkg/logger"
)

const serviceName = "auth-profile-api"

func main() {
	if err := run(); err != nil {
		// The logger may not be initialised yet.
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("auth-profile-api stopped")
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		ClientName: serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Collaborators ---
	issuer, err := token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		return err
	}
	denylist := redisdb.NewTokenDenylist(rdb)
	geolocator := geo.NewIPAPIClient(geo.Config{BaseURL: cfg.Geo.BaseURL, Timeout: cfg.Geo.Timeout})

	// --- Services ---
	e := api.NewRouter(api.Dependencies{
		AuthService:     service.NewAuthService(users, issuer, denylist, logger.Component("auth_service")),
		UserService:     service.NewUserService(users, logger.Component("user_service")),
		LocationService: service.NewLocationService(geolocator, logger.Component("location_service")),
		HealthChecks: []handler.DependencyCheck{
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongodb.Ping(ctx, db) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
		Logger: logger.Component("http"),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
