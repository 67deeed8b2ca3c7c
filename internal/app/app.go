// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/config"
)

// InitializeApp orchestrates the application initialization in the correct
// order: logger, database, locale engine, router. It returns the router and
// a cleanup function that releases background resources in reverse order.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	InitializeLogger()

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db := InitializeDatabase(cfg)

	engine, err := InitializeEngine(cfg, db)
	if err != nil {
		if db.Mongo != nil {
			_ = db.Mongo.Close(context.Background())
		}
		return nil, nil, err
	}

	router := InitializeRouter(cfg, engine, db)

	cleanup := func() {
		if db.Reporter != nil {
			db.Reporter.Stop()
		}
		engine.Close()
		if db.Mongo != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Mongo.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		}
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("default_locale", cfg.Engine.DefaultLocale).
		Bool("mongodb", db.Mongo != nil).
		Bool("auth", cfg.Auth.Enabled).
		Msg("Application initialized")

	return router, cleanup, nil
}
