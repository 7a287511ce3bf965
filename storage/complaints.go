package storage

import (
	"context"
	"errors"
	"fmt"

	"go-laundry/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoComplaintStore persists complaints in the complaints collection.
type MongoComplaintStore struct {
	collection *mongo.Collection
}

// NewMongoComplaintStore creates a new MongoComplaintStore
func NewMongoComplaintStore(client *mongo.Client) *MongoComplaintStore {
	return &MongoComplaintStore{collection: client.Database(dbName).Collection(complaintsCollection)}
}

// Insert stores a new complaint and returns its generated identifier.
func (s *MongoComplaintStore) Insert(ctx context.Context, complaint *models.Complaint) (string, error) {
	result, err := s.collection.InsertOne(ctx, complaint)
	if err != nil {
		return "", fmt.Errorf("failed to insert complaint: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Get returns the complaint or (nil, nil) when no record exists.
func (s *MongoComplaintStore) Get(ctx context.Context, id string) (*models.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var complaint models.Complaint
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&complaint)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return &complaint, nil
}

// ListAll returns every complaint, newest first (store-ordered).
func (s *MongoComplaintStore) ListAll(ctx context.Context) ([]models.Complaint, error) {
	return s.list(ctx, bson.M{})
}

// ListByUser returns the complaints submitted by a single user, newest first.
func (s *MongoComplaintStore) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return s.list(ctx, bson.M{"submittedBy": userID})
}

func (s *MongoComplaintStore) list(ctx context.Context, filter bson.M) ([]models.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, fmt.Errorf("failed to decode complaints: %w", err)
	}
	return complaints, nil
}

// Update applies a field-merge patch to the complaint.
func (s *MongoComplaintStore) Update(ctx context.Context, id string, upd models.ComplaintUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid complaint id %q", id)
	}

	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Response != nil {
		set["response"] = *upd.Response
	}
	if upd.ResolvedAt != nil {
		set["resolvedAt"] = *upd.ResolvedAt
	}
	if upd.UpdatedAt != nil {
		set["updatedAt"] = *upd.UpdatedAt
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	return nil
}

// Delete removes the complaint. Deleting a missing id is not an error.
func (s *MongoComplaintStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	return nil
}
