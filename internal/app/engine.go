// Package app provides locale engine initialization.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/i18n"
	"github.com/soundhaus/locale-service/internal/repository"
	"github.com/soundhaus/locale-service/internal/service"
)

// InitializeEngine builds the locale engine from configuration: the registry
// of enabled locales, the bundle fetcher (MongoDB when connected, files
// otherwise), the preference store, and the startup URL. Engine events are
// forwarded to the async reporter.
func InitializeEngine(cfg config.Config, db *Database) (*i18n.Engine, error) {
	locales := i18n.LocalesFromCodes(cfg.Engine.EnabledLocales)
	if len(locales) == 0 {
		locales = i18n.DefaultLocales()
	}
	registry, err := i18n.NewRegistry(cfg.Engine.DefaultLocale, locales)
	if err != nil {
		return nil, fmt.Errorf("building locale registry: %w", err)
	}

	var fetcher i18n.ContentFetcher
	if db.Bundles != nil {
		fetcher = repository.NewBundleFetcher(db.Bundles)
		log.Info().Msg("Loading translation bundles from MongoDB")
	} else {
		fetcher = i18n.NewFileFetcher(cfg.Engine.LocalesDir)
		log.Info().Str("dir", cfg.Engine.LocalesDir).Msg("Loading translation bundles from files")
	}

	reporter := db.Reporter
	store := i18n.NewStore(fetcher, func(code string, err error) {
		reportEvent(reporter, model.NewEvent(model.EventBundleLoadFailure).
			WithLocale(code).
			WithError(err).
			WithMessage("bundle fetch failed, substituted built-in table"))
	})

	engine := i18n.NewEngine(i18n.Options{
		Registry:    registry,
		Store:       store,
		Site:        i18n.NewMemorySiteURL(cfg.Engine.StartupURL),
		Preferences: i18n.NewFilePreferences(cfg.Engine.PreferenceFile),
		Languages:   i18n.EnvLanguages{},
		CacheSize:   cfg.Cache.Size,
		CacheTTL:    cfg.Cache.TTL,
		MissingKey: func(locale, key string) {
			reportEvent(reporter, model.NewEvent(model.EventMissingKey).
				WithLocale(locale).
				WithKey(key))
		},
	})

	engine.OnChange(func(change i18n.Change) {
		reportEvent(reporter, model.NewEvent(model.EventLocaleSwitch).
			WithLocale(change.Code).
			WithField("direction", string(change.Direction)))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := engine.Initialize(ctx); err != nil {
		// Initialization only fails on context cancellation; the engine is
		// still serviceable on built-in tables.
		log.Warn().Err(err).Msg("Locale engine initialization incomplete")
	}

	return engine, nil
}

// reportEvent enqueues an event when reporting is enabled.
func reportEvent(reporter *service.AsyncReporter, event *model.Event) {
	if reporter != nil {
		reporter.Report(event)
	}
}
