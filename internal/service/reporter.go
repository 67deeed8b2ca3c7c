// Package service contains the business logic for the locale service.
package service

import (
	"context"

	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/repository"
)

// EventsStore is the repository surface the reporting service needs,
// satisfied by both the raw events repository and its circuit breaker
// wrapper.
type EventsStore interface {
	Create(ctx context.Context, event *repository.EventDocument) error
	CreateMany(ctx context.Context, events []*repository.EventDocument) error
	Query(ctx context.Context, opts repository.EventQueryOptions) ([]*repository.EventDocument, error)
	Count(ctx context.Context, opts repository.EventQueryOptions) (int64, error)
}

// ReportingService records and queries engine and HTTP events.
type ReportingService interface {
	// Record stores a single event.
	Record(ctx context.Context, event *model.Event) error
	// RecordBatch stores multiple events in bulk.
	RecordBatch(ctx context.Context, events []*model.Event) error
	// Query returns events matching the given filters, newest first.
	Query(ctx context.Context, opts model.EventQueryOptions) ([]model.Event, error)
	// Count returns how many events match the filters.
	Count(ctx context.Context, opts model.EventQueryOptions) (int64, error)
}

// reportingService implements ReportingService over the events repository.
type reportingService struct {
	events EventsStore
}

// NewReportingService creates a reporting service. A nil store yields a
// no-op service so callers never have to branch on configuration.
func NewReportingService(events EventsStore) ReportingService {
	if events == nil {
		return noopReporting{}
	}
	return &reportingService{events: events}
}

// Record stores a single event.
func (s *reportingService) Record(ctx context.Context, event *model.Event) error {
	return s.events.Create(ctx, toDocument(event))
}

// RecordBatch stores multiple events in bulk.
func (s *reportingService) RecordBatch(ctx context.Context, events []*model.Event) error {
	docs := make([]*repository.EventDocument, len(events))
	for i, e := range events {
		docs[i] = toDocument(e)
	}
	return s.events.CreateMany(ctx, docs)
}

// Query returns events matching the given filters, newest first.
func (s *reportingService) Query(ctx context.Context, opts model.EventQueryOptions) ([]model.Event, error) {
	docs, err := s.events.Query(ctx, toQueryOptions(opts))
	if err != nil {
		return nil, err
	}
	events := make([]model.Event, len(docs))
	for i, doc := range docs {
		events[i] = fromDocument(doc)
	}
	return events, nil
}

// Count returns how many events match the filters.
func (s *reportingService) Count(ctx context.Context, opts model.EventQueryOptions) (int64, error) {
	return s.events.Count(ctx, toQueryOptions(opts))
}

func toDocument(e *model.Event) *repository.EventDocument {
	return &repository.EventDocument{
		Timestamp: e.Timestamp,
		Type:      e.Type,
		Locale:    e.Locale,
		Key:       e.Key,
		Message:   e.Message,
		RequestID: e.RequestID,
		Error:     e.Error,
		Fields:    e.Fields,
	}
}

func fromDocument(doc *repository.EventDocument) model.Event {
	return model.Event{
		ID:        doc.ID.Hex(),
		Timestamp: doc.Timestamp,
		Type:      doc.Type,
		Locale:    doc.Locale,
		Key:       doc.Key,
		Message:   doc.Message,
		RequestID: doc.RequestID,
		Error:     doc.Error,
		Fields:    doc.Fields,
	}
}

func toQueryOptions(opts model.EventQueryOptions) repository.EventQueryOptions {
	out := repository.EventQueryOptions{
		Type:   opts.Type,
		Locale: opts.Locale,
		Limit:  opts.Limit,
		Skip:   opts.Offset,
	}
	if !opts.Since.IsZero() {
		since := opts.Since
		out.StartTime = &since
	}
	if !opts.Until.IsZero() {
		until := opts.Until
		out.EndTime = &until
	}
	return out
}

// noopReporting discards everything; used when MongoDB is disabled.
type noopReporting struct{}

func (noopReporting) Record(context.Context, *model.Event) error        { return nil }
func (noopReporting) RecordBatch(context.Context, []*model.Event) error { return nil }
func (noopReporting) Query(context.Context, model.EventQueryOptions) ([]model.Event, error) {
	return nil, nil
}
func (noopReporting) Count(context.Context, model.EventQueryOptions) (int64, error) { return 0, nil }
