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

// MongoUserStore persists accounts in the users collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore creates a new MongoUserStore
func NewMongoUserStore(client *mongo.Client) *MongoUserStore {
	return &MongoUserStore{collection: client.Database(dbName).Collection(usersCollection)}
}

// Insert stores a new account and returns its generated identifier.
func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetByID returns the account or (nil, nil) when no record exists.
func (s *MongoUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail returns the account with the given email or (nil, nil).
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListAll returns every account.
func (s *MongoUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	return s.list(ctx, bson.M{})
}

// emailPrefixSentinel is a code point above any character used in email
// addresses. Appended to the prefix it forms the range's upper bound, so
// the predicate matches every email that starts with the prefix.
const emailPrefixSentinel = "\uf8ff"

func emailPrefixFilter(prefix string) bson.M {
	return bson.M{"email": bson.M{"$gte": prefix, "$lte": prefix + emailPrefixSentinel}}
}

// SearchByEmailPrefix returns accounts whose email starts with the prefix,
// using the same range-predicate trick the admin order form relies on.
func (s *MongoUserStore) SearchByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error) {
	if prefix == "" {
		return nil, nil
	}
	return s.list(ctx, emailPrefixFilter(prefix))
}

func (s *MongoUserStore) list(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Update applies a field-merge patch to the account.
func (s *MongoUserStore) Update(ctx context.Context, id string, upd models.UserUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user id %q", id)
	}

	set := bson.M{}
	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.ContactInfo != nil {
		set["contactInfo"] = *upd.ContactInfo
	}
	if upd.IsAdmin != nil {
		set["isAdmin"] = *upd.IsAdmin
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
