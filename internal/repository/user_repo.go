package repository

import (
	"context"
	"fmt"

	"equisports-backend/internal/database"
	"equisports-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database, name string) *UserRepo {
	return &UserRepo{
		collection: database.Collection(db, name),
	}
}

func (r *UserRepo) Create(ctx context.Context, user bson.D) (*models.InsertResult, error) {
	return insertOne(ctx, r.collection, user)
}

func (r *UserRepo) FindAll(ctx context.Context) ([]bson.M, error) {
	return findAll(ctx, r.collection)
}

// UpdateLastSignIn sets lastSignInTime on the first user whose email matches.
// No match is not an error; the result reports a zero matched count.
func (r *UserRepo) UpdateLastSignIn(ctx context.Context, email, lastSignInTime any) (*models.UpdateResult, error) {
	if r.collection == nil {
		return nil, database.ErrNotConnected
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"lastSignInTime": lastSignInTime},
	})
	if err != nil {
		return nil, fmt.Errorf("update user %v: %w", email, err)
	}
	return models.NewUpdateResult(result), nil
}

// EnsureIndexes creates a non-unique index on email, the PATCH filter key.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	if r.collection == nil {
		return database.ErrNotConnected
	}
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
