package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/metrics"
	"github.com/soundhaus/locale-service/internal/middleware"
	"github.com/soundhaus/locale-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string

	Engine       *i18n.Engine
	Reporter     *service.AsyncReporter
	AuthService  service.AuthService
	TokenService service.TokenService

	// EnableAuth gates the admin routes behind the API-key/JWT exchange.
	EnableAuth bool
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the locale service.
func NewRouter(handler *Handler, adminHandler *AdminHandler, authHandler *AuthHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	registerPublicRoutes(api, handler)
	registerAdminRoutes(api, adminHandler, authHandler, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "X-CSRF-Token", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.Locale(cfg.Engine),
		middleware.RequestLogger(cfg.Reporter),
		middleware.ErrorHandler(cfg.Engine),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout, cfg.Engine))
	}

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit(cfg.Engine))
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// registerPublicRoutes registers the public locale routes.
func registerPublicRoutes(api *gin.RouterGroup, handler *Handler) {
	api.POST("/translate", handler.Translate)
	api.GET("/locales", handler.GetLocales)
	api.GET("/locale", handler.GetLocale)
	api.PUT("/locale", handler.SwitchLocale)
}

// registerAdminRoutes registers the token exchange and the admin routes
// behind Bearer authentication.
func registerAdminRoutes(api *gin.RouterGroup, adminHandler *AdminHandler, authHandler *AuthHandler, cfg *RouterConfig) {
	if !cfg.EnableAuth || adminHandler == nil || authHandler == nil {
		return
	}

	api.POST("/auth/token", middleware.APIKeyAuth(cfg.AuthService, cfg.Engine), authHandler.IssueToken)

	admin := api.Group("/admin", middleware.JWTAuth(cfg.TokenService, cfg.Engine))
	admin.PUT("/bundles/:locale", adminHandler.UpsertBundle)
	admin.GET("/bundles/:locale", adminHandler.GetBundle)
	admin.GET("/events", adminHandler.QueryEvents)
}
