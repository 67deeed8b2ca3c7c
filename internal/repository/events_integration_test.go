//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaus/locale-service/internal/circuitbreaker"
)

func TestEventsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.SetEventsTTL(ctx, 30*24*time.Hour))

	repo := NewEventsRepository(db)

	t.Run("create event", func(t *testing.T) {
		event := &EventDocument{
			ID:        primitive.NewObjectID(),
			Timestamp: time.Now(),
			Type:      "missing_key",
			Locale:    "es",
			Key:       "nav.contact",
			RequestID: "test-request-id",
		}

		err := repo.Create(ctx, event)
		assert.NoError(t, err)
		assert.False(t, event.ID.IsZero())
	})

	t.Run("create fills defaults", func(t *testing.T) {
		event := &EventDocument{Type: "locale_switch", Locale: "fr"}
		err := repo.Create(ctx, event)
		require.NoError(t, err)
		assert.False(t, event.ID.IsZero())
		assert.False(t, event.Timestamp.IsZero())
	})

	t.Run("create many events", func(t *testing.T) {
		events := []*EventDocument{
			{Type: "missing_key", Locale: "en", Key: "a"},
			{Type: "missing_key", Locale: "en", Key: "b"},
			{Type: "bundle_load_failure", Locale: "de"},
		}

		err := repo.CreateMany(ctx, events)
		assert.NoError(t, err)
	})

	t.Run("query by type", func(t *testing.T) {
		events, err := repo.Query(ctx, EventQueryOptions{Type: "missing_key"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(events), 3)
		for _, e := range events {
			assert.Equal(t, "missing_key", e.Type)
		}
	})

	t.Run("query by locale", func(t *testing.T) {
		events, err := repo.Query(ctx, EventQueryOptions{Locale: "fr"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "locale_switch", events[0].Type)
	})

	t.Run("query with limit and skip", func(t *testing.T) {
		page, err := repo.Query(ctx, EventQueryOptions{Type: "missing_key", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		page, err = repo.Query(ctx, EventQueryOptions{Type: "missing_key", Limit: 2, Skip: 2})
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("count events", func(t *testing.T) {
		count, err := repo.Count(ctx, EventQueryOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(5))

		count, err = repo.Count(ctx, EventQueryOptions{Type: "bundle_load_failure"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("query by time range", func(t *testing.T) {
		start := time.Now().Add(-time.Hour)
		end := time.Now().Add(time.Hour)
		events, err := repo.Query(ctx, EventQueryOptions{StartTime: &start, EndTime: &end})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(events), 5)
	})
}

func TestEventsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewEventsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          time.Second,
		Name:             "events-test",
	})
	wrapped := NewEventsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("operations pass through a closed circuit", func(t *testing.T) {
		err := wrapped.Create(ctx, &EventDocument{Type: "missing_key", Locale: "en"})
		require.NoError(t, err)

		count, err := wrapped.Count(ctx, EventQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
