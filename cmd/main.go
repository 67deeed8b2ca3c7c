// Package main is the entry point for the locale-service application.
//
// @title           Locale Service API
// @version         1.0.0
// @description     Locale resolution and translation engine for the studio site.
//
//	Detects the visitor's locale, resolves dotted translation keys with
//	fallback and interpolation, and manages locale switching.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/soundhaus/locale-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Admin API key, exchanged for a Bearer token at /api/auth/token.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token for the admin endpoints.
//
// @tag.name        Locales
// @tag.description Locale detection, translation, and switching
//
// @tag.name        Admin
// @tag.description Bundle management and event queries
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/soundhaus/locale-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
