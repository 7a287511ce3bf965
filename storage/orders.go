package storage

import (
	"context"
	"errors"
	"fmt"

	"go-laundry/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrderStore persists laundry orders in the laundryOrders collection.
type MongoOrderStore struct {
	collection *mongo.Collection
}

// NewMongoOrderStore creates a new MongoOrderStore
func NewMongoOrderStore(client *mongo.Client) *MongoOrderStore {
	return &MongoOrderStore{collection: client.Database(dbName).Collection(ordersCollection)}
}

// Insert stores a new order and returns its generated identifier.
func (s *MongoOrderStore) Insert(ctx context.Context, order *models.LaundryOrder) (string, error) {
	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Get returns the order or (nil, nil) when no record exists.
func (s *MongoOrderStore) Get(ctx context.Context, id string) (*models.LaundryOrder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var order models.LaundryOrder
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// ListByUser returns every order owned by the user. Ordering is left to the
// caller since the collection has no secondary index on createdAt.
func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string) ([]models.LaundryOrder, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

// ListAll returns every order in the collection.
func (s *MongoOrderStore) ListAll(ctx context.Context) ([]models.LaundryOrder, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoOrderStore) list(ctx context.Context, filter bson.M) ([]models.LaundryOrder, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.LaundryOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// Update applies a field-merge patch to the order.
func (s *MongoOrderStore) Update(ctx context.Context, id string, upd models.OrderUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid order id %q", id)
	}

	set := bson.M{}
	if upd.UserEmail != nil {
		set["userEmail"] = *upd.UserEmail
	}
	if upd.Items != nil {
		set["items"] = *upd.Items
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Progress != nil {
		set["progress"] = *upd.Progress
	}
	if upd.CompletedAt != nil {
		set["completedAt"] = *upd.CompletedAt
	}
	if upd.EstimatedCompletionTime != nil {
		set["estimatedCompletionTime"] = *upd.EstimatedCompletionTime
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.Cost != nil {
		set["cost"] = *upd.Cost
	}
	if upd.ClothItems != nil {
		set["clothItems"] = *upd.ClothItems
	}
	if upd.BagCode != nil {
		set["bagCode"] = *upd.BagCode
	}
	if upd.UpdatedAt != nil {
		set["updatedAt"] = *upd.UpdatedAt
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// Delete removes the order. Deleting a missing id is not an error.
func (s *MongoOrderStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
