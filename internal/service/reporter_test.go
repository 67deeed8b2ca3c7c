package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/repository"
)

// fakeEventsStore captures documents in memory.
type fakeEventsStore struct {
	docs []*repository.EventDocument
	opts repository.EventQueryOptions
}

func (f *fakeEventsStore) Create(ctx context.Context, doc *repository.EventDocument) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeEventsStore) CreateMany(ctx context.Context, docs []*repository.EventDocument) error {
	f.docs = append(f.docs, docs...)
	return nil
}

func (f *fakeEventsStore) Query(ctx context.Context, opts repository.EventQueryOptions) ([]*repository.EventDocument, error) {
	f.opts = opts
	return f.docs, nil
}

func (f *fakeEventsStore) Count(ctx context.Context, opts repository.EventQueryOptions) (int64, error) {
	return int64(len(f.docs)), nil
}

// TestReportingService_Record tests event-to-document mapping.
func TestReportingService_Record(t *testing.T) {
	store := &fakeEventsStore{}
	svc := NewReportingService(store)

	event := model.NewEvent(model.EventMissingKey).
		WithLocale("es").
		WithKey("nav.contact").
		WithField("path", "/es/studio")

	require.NoError(t, svc.Record(context.Background(), event))
	require.Len(t, store.docs, 1)

	doc := store.docs[0]
	assert.Equal(t, model.EventMissingKey, doc.Type)
	assert.Equal(t, "es", doc.Locale)
	assert.Equal(t, "nav.contact", doc.Key)
	assert.Equal(t, "/es/studio", doc.Fields["path"])
}

// TestReportingService_Query tests document-to-event mapping and filters.
func TestReportingService_Query(t *testing.T) {
	store := &fakeEventsStore{
		docs: []*repository.EventDocument{
			{
				ID:        primitive.NewObjectID(),
				Timestamp: time.Now(),
				Type:      model.EventLocaleSwitch,
				Locale:    "fr",
			},
		},
	}
	svc := NewReportingService(store)

	since := time.Now().Add(-time.Hour)
	events, err := svc.Query(context.Background(), model.EventQueryOptions{
		Type:   model.EventLocaleSwitch,
		Locale: "fr",
		Since:  since,
		Limit:  10,
		Offset: 5,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventLocaleSwitch, events[0].Type)
	assert.NotEmpty(t, events[0].ID)

	// Filters are translated to repository options.
	assert.Equal(t, model.EventLocaleSwitch, store.opts.Type)
	assert.Equal(t, "fr", store.opts.Locale)
	require.NotNil(t, store.opts.StartTime)
	assert.True(t, store.opts.StartTime.Equal(since))
	assert.Nil(t, store.opts.EndTime)
	assert.Equal(t, 10, store.opts.Limit)
	assert.Equal(t, 5, store.opts.Skip)
}

// TestNewReportingService_NilStore verifies the no-op fallback.
func TestNewReportingService_NilStore(t *testing.T) {
	svc := NewReportingService(nil)

	assert.NoError(t, svc.Record(context.Background(), model.NewEvent(model.EventMissingKey)))

	events, err := svc.Query(context.Background(), model.EventQueryOptions{})
	assert.NoError(t, err)
	assert.Empty(t, events)

	n, err := svc.Count(context.Background(), model.EventQueryOptions{})
	assert.NoError(t, err)
	assert.Zero(t, n)
}
