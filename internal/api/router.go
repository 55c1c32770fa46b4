package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dashportal/auth-service/docs"
	"github.com/dashportal/auth-service/internal/api/handler"
	"github.com/dashportal/auth-service/internal/api/metrics"
	"github.com/dashportal/auth-service/internal/api/middleware"
	"github.com/dashportal/auth-service/internal/core/domain"
	"github.com/dashportal/auth-service/internal/core/password"
	"github.com/dashportal/auth-service/internal/core/service"
	"github.com/dashportal/auth-service/internal/core/token"
	"github.com/dashportal/auth-service/internal/infrastructure/config"
	mongodb "github.com/dashportal/auth-service/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := timedHasher{inner: newHasher(cfg)}
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, issuer)
	authHandler := handler.NewAuthHandler(authService)
	protectedHandler := handler.NewProtectedHandler(userRepo)
	authenticate := middleware.Auth(issuer, userRepo, log)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Protected routes: Auth gate first, then the role gate ---
	protected := e.Group("/api/protected", authenticate)
	protected.GET("/profile", protectedHandler.Profile)
	protected.GET("/admin-dashboard", protectedHandler.AdminDashboard, middleware.RBAC(domain.RoleAdmin))
	protected.GET("/user-dashboard", protectedHandler.UserDashboard, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	protected.GET("/public-data", protectedHandler.PublicData, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// timedHasher reports hashing latency to the metrics registry so the core
// packages stay free of metrics imports.
type timedHasher struct {
	inner password.Hasher
}

func (h timedHasher) Hash(plaintext string) (string, error) {
	start := time.Now()
	digest, err := h.inner.Hash(plaintext)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	return digest, err
}

func (h timedHasher) Verify(plaintext, digest string) bool {
	return h.inner.Verify(plaintext, digest)
}

// newHasher selects the password hashing strategy declared in configuration.
func newHasher(cfg *config.Config) password.Hasher {
	switch cfg.Password.Algorithm {
	case config.PasswordAlgoBcrypt:
		return password.NewBcryptHasher(cfg.Password.BcryptCost)
	default:
		return password.NewArgon2Hasher(password.Argon2Params{
			MemoryKiB:   cfg.Password.Argon2MemoryKiB,
			Iterations:  cfg.Password.Argon2Iterations,
			Parallelism: cfg.Password.Argon2Parallelism,
		})
	}
}
