package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the catalog indexes on startup. Index creation is
// idempotent on the server side, so this is safe on every boot.
func (m *MongoDB) EnsureIndexes(collection string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll := m.Database.Collection(collection)

	indexes := []mongo.IndexModel{
		{
			// Backs the full-text q parameter.
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "brand", Value: "text"},
				{Key: "model", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().SetName("catalog_text"),
		},
		{
			Keys: bson.D{{Key: "brand", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "body_type", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "fuel_type", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "price.min", Value: 1}, {Key: "price.max", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "performance.power_bhp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "launch_year", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "is_featured", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", collection, err)
	}
	return nil
}
