// Package repository provides data access for recorded events.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventDocument represents a recorded event in MongoDB.
type EventDocument struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time              `bson:"timestamp" json:"timestamp"`
	Type      string                 `bson:"type" json:"type"`
	Locale    string                 `bson:"locale,omitempty" json:"locale,omitempty"`
	Key       string                 `bson:"key,omitempty" json:"key,omitempty"`
	Message   string                 `bson:"message,omitempty" json:"message,omitempty"`
	RequestID string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Error     string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields    map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// EventsRepository provides methods for event operations at the repository level.
type EventsRepository struct {
	collection *mongo.Collection
}

// NewEventsRepository creates a new events repository.
func NewEventsRepository(db *MongoDB) *EventsRepository {
	return &EventsRepository{
		collection: db.Events,
	}
}

// Create inserts a single event document.
func (r *EventsRepository) Create(ctx context.Context, event *EventDocument) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// CreateMany inserts multiple event documents in bulk.
func (r *EventsRepository) CreateMany(ctx context.Context, events []*EventDocument) error {
	if len(events) == 0 {
		return nil
	}

	docs := make([]interface{}, len(events))
	for i, event := range events {
		if event.ID.IsZero() {
			event.ID = primitive.NewObjectID()
		}
		if event.Timestamp.IsZero() {
			event.Timestamp = time.Now()
		}
		docs[i] = event
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// EventQueryOptions provides options for querying events.
type EventQueryOptions struct {
	Type      string
	Locale    string
	RequestID string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (opts EventQueryOptions) filter() bson.M {
	filter := bson.M{}
	if opts.Type != "" {
		filter["type"] = opts.Type
	}
	if opts.Locale != "" {
		filter["locale"] = opts.Locale
	}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// Query queries event documents with filters, newest first.
func (r *EventsRepository) Query(ctx context.Context, opts EventQueryOptions) ([]*EventDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var events []*EventDocument
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// Count returns the count of event documents matching the filter.
func (r *EventsRepository) Count(ctx context.Context, opts EventQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
