// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/circuitbreaker"
	"github.com/soundhaus/locale-service/internal/repository"
	"github.com/soundhaus/locale-service/internal/service"
)

// Database bundles the MongoDB client with its circuit-breaker protected
// repositories. All fields are nil when MongoDB is disabled or unreachable;
// the rest of the application degrades to file bundles and no-op reporting.
type Database struct {
	Mongo     *repository.MongoDB
	Bundles   *repository.BundlesRepositoryWithCircuitBreaker
	Events    *repository.EventsRepositoryWithCircuitBreaker
	Reporting service.ReportingService
	Reporter  *service.AsyncReporter
}

// InitializeDatabase connects to MongoDB and wires the repositories.
// Returns a Database with nil fields when the database is disabled or the
// connection fails; the caller continues without persistence.
func InitializeDatabase(cfg config.Config) *Database {
	db := &Database{
		Reporting: service.NewReportingService(nil),
	}

	if !cfg.Database.Enabled {
		log.Info().Msg("MongoDB disabled - using file bundles and no-op event reporting")
		return db
	}

	mongoDB, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return db
	}
	log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoDB.SetEventsTTL(ctx, cfg.Database.EventsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to configure events TTL index")
	}

	bundlesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Database.CircuitBreakerTimeout,
		Name:             "mongodb-bundles",
	})
	eventsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Database.CircuitBreakerTimeout,
		Name:             "mongodb-events",
	})

	db.Mongo = mongoDB
	db.Bundles = repository.NewBundlesRepositoryWithCircuitBreaker(
		repository.NewBundlesRepository(mongoDB), bundlesCB)
	db.Events = repository.NewEventsRepositoryWithCircuitBreaker(
		repository.NewEventsRepository(mongoDB), eventsCB)
	db.Reporting = service.NewReportingService(db.Events)
	db.Reporter = service.NewAsyncReporter(db.Reporting, service.DefaultAsyncReporterConfig())

	return db
}
