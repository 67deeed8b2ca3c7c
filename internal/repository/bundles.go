// Package repository provides data access for translation bundles.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BundleDocument represents one locale's translation bundle in MongoDB.
type BundleDocument struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Locale    string                 `bson:"locale" json:"locale"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	Version   int64                  `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	UpdatedBy string                 `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// BundlesRepository provides methods for bundle operations.
type BundlesRepository struct {
	collection *mongo.Collection
}

// NewBundlesRepository creates a new bundles repository.
func NewBundlesRepository(db *MongoDB) *BundlesRepository {
	return &BundlesRepository{
		collection: db.Bundles,
	}
}

// Get returns the bundle for a locale, or nil when none is stored.
func (r *BundlesRepository) Get(ctx context.Context, locale string) (*BundleDocument, error) {
	var doc BundleDocument
	err := r.collection.FindOne(ctx, bson.M{"locale": locale}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upsert replaces a locale's bundle data, bumping its version. The updated
// document is returned.
func (r *BundlesRepository) Upsert(ctx context.Context, locale string, data map[string]interface{}, updatedBy string) (*BundleDocument, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"locale":     locale,
			"data":       data,
			"updated_at": now,
			"updated_by": updatedBy,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
		"$inc": bson.M{"version": 1},
	}

	var doc BundleDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"locale": locale},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// List returns all stored bundles, most recently updated first.
func (r *BundlesRepository) List(ctx context.Context, limit int) ([]BundleDocument, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []BundleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
