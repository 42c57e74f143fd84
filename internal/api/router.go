package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/identityworks/user-api/internal/api/handler"
	"github.com/identityworks/user-api/internal/api/middleware"
	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
	"github.com/identityworks/user-api/internal/core/service"
	"github.com/identityworks/user-api/internal/infrastructure/config"
	mongodb "github.com/identityworks/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/identityworks/user-api/internal/infrastructure/db/redis"
	"github.com/identityworks/user-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit trail is constructed (and its workers started) by the caller so
// its lifecycle outlives individual requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditTrail, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewPasswordHasher(cfg.BcryptCost, log)
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL, log)
	authz := service.NewAuthorizer(log)
	authService := service.NewAuthService(userRepo, hasher, audit, log)
	userService := service.NewUserService(userRepo, log)
	attempts := redisdb.NewFailedLoginTracker(rdb)

	authHandler := handler.NewAuthHandler(authService, tokens, attempts, log)
	userHandler := handler.NewUserHandler(userService, authz, log)

	// --- Auth routes (anonymous, throttled) ---
	// The limiter sits in front of the core; authentication behaves
	// identically with or without it.
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(12 * time.Second), // ~5 per minute
			Burst:     5,
			ExpiresIn: 3 * time.Minute,
		}),
	})
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register, loginLimiter)
	auth.POST("/login", authHandler.Login, loginLimiter)

	// --- Protected routes ---
	v1 := e.Group("/v1", middleware.Auth(tokens))
	v1.GET("/users", userHandler.List, middleware.RBAC(authz, domain.PolicyAdminOnly))
	v1.GET("/users/me", userHandler.Me)
	v1.GET("/users/:id", userHandler.GetByID, middleware.RBAC(authz, domain.PolicyUserOrAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
