package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-laundry/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLostItemStore persists lost-item reports in the lostItems collection.
type MongoLostItemStore struct {
	collection *mongo.Collection
}

// NewMongoLostItemStore creates a new MongoLostItemStore
func NewMongoLostItemStore(client *mongo.Client) *MongoLostItemStore {
	return &MongoLostItemStore{collection: client.Database(dbName).Collection(lostItemsCollection)}
}

// Insert stores a new report and returns its generated identifier.
func (s *MongoLostItemStore) Insert(ctx context.Context, item *models.LostItem) (string, error) {
	result, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("failed to insert lost item: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Get returns the report or (nil, nil) when no record exists.
func (s *MongoLostItemStore) Get(ctx context.Context, id string) (*models.LostItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var item models.LostItem
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lost item: %w", err)
	}
	return &item, nil
}

// ListAll returns every report, newest first (store-ordered).
func (s *MongoLostItemStore) ListAll(ctx context.Context) ([]models.LostItem, error) {
	return s.list(ctx, bson.M{})
}

// ListByReporter returns the reports filed by a single user, newest first.
func (s *MongoLostItemStore) ListByReporter(ctx context.Context, userID string) ([]models.LostItem, error) {
	return s.list(ctx, bson.M{"reportedBy": userID})
}

func (s *MongoLostItemStore) list(ctx context.Context, filter bson.M) ([]models.LostItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reportedAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lost items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.LostItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode lost items: %w", err)
	}
	return items, nil
}

// UpdateStatus sets the report status and update timestamp.
func (s *MongoLostItemStore) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid lost item id %q", id)
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("failed to update lost item status: %w", err)
	}
	return nil
}

// Delete removes the report. Deleting a missing id is not an error.
func (s *MongoLostItemStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete lost item: %w", err)
	}
	return nil
}
