// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/soundhaus/locale-service/internal/circuitbreaker"
)

// BundlesRepositoryWithCircuitBreaker wraps BundlesRepository with circuit breaker protection.
type BundlesRepositoryWithCircuitBreaker struct {
	repo           *BundlesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBundlesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBundlesRepositoryWithCircuitBreaker(repo *BundlesRepository, cb *circuitbreaker.CircuitBreaker) *BundlesRepositoryWithCircuitBreaker {
	return &BundlesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns a locale's bundle with circuit breaker protection. An open
// circuit surfaces as an error so the translation store can degrade to its
// built-in tables.
func (r *BundlesRepositoryWithCircuitBreaker) Get(ctx context.Context, locale string) (*BundleDocument, error) {
	var result *BundleDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, locale)
		return cbErr
	})
	return result, err
}

// Upsert replaces a locale's bundle with circuit breaker protection.
func (r *BundlesRepositoryWithCircuitBreaker) Upsert(ctx context.Context, locale string, data map[string]interface{}, updatedBy string) (*BundleDocument, error) {
	var result *BundleDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, locale, data, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns all stored bundles with circuit breaker protection.
func (r *BundlesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BundleDocument, error) {
	var result []BundleDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BundlesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// EventsRepositoryWithCircuitBreaker wraps EventsRepository with circuit breaker protection.
type EventsRepositoryWithCircuitBreaker struct {
	repo           *EventsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewEventsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewEventsRepositoryWithCircuitBreaker(repo *EventsRepository, cb *circuitbreaker.CircuitBreaker) *EventsRepositoryWithCircuitBreaker {
	return &EventsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single event with circuit breaker protection.
// If the circuit is open, silently fails (reporting is non-critical).
func (r *EventsRepositoryWithCircuitBreaker) Create(ctx context.Context, event *EventDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, event)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple events with circuit breaker protection.
// If the circuit is open, silently fails (reporting is non-critical).
func (r *EventsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, events []*EventDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, events)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves events with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts EventQueryOptions) ([]*EventDocument, error) {
	var result []*EventDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of events with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts EventQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *EventsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
