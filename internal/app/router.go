// Package app provides router initialization.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/soundhaus/locale-service/config"
	internalhttp "github.com/soundhaus/locale-service/internal/http"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/service"
)

// InitializeRouter wires handlers, health checks, and middleware into the
// HTTP router.
func InitializeRouter(cfg config.Config, engine *i18n.Engine, db *Database) *gin.Engine {
	handler := internalhttp.NewHandler(engine)

	routerCfg := internalhttp.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Engine:         engine,
		Reporter:       db.Reporter,
	}

	// Admin surface needs both persistence and auth configuration.
	var adminHandler *internalhttp.AdminHandler
	var authHandler *internalhttp.AuthHandler
	if cfg.Auth.Enabled && db.Bundles != nil {
		authService := service.NewAuthService(cfg.Auth)
		tokenService := service.NewTokenService(cfg.Auth)

		adminHandler = internalhttp.NewAdminHandler(engine, db.Bundles, db.Reporting)
		authHandler = internalhttp.NewAuthHandler(engine, tokenService)

		routerCfg.AuthService = authService
		routerCfg.TokenService = tokenService
		routerCfg.EnableAuth = true
	}

	healthHandler := internalhttp.NewHealthHandler()
	if db.Mongo != nil {
		mongo := db.Mongo
		healthHandler.RegisterChecker("mongodb", internalhttp.HealthCheckerFunc(func() error {
			return mongo.HealthCheck(context.Background())
		}))
		healthHandler.RegisterCircuitBreaker("mongodb-bundles", db.Bundles.GetCircuitBreaker())
		healthHandler.RegisterCircuitBreaker("mongodb-events", db.Events.GetCircuitBreaker())
	}

	return internalhttp.NewRouter(handler, adminHandler, authHandler, healthHandler, routerCfg)
}
