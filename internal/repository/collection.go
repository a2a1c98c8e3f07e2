package repository

import (
	"context"
	"fmt"

	"equisports-backend/internal/database"
	"equisports-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func insertOne(ctx context.Context, coll *mongo.Collection, doc bson.D) (*models.InsertResult, error) {
	if coll == nil {
		return nil, database.ErrNotConnected
	}
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return models.NewInsertResult(result), nil
}

// findAll never returns a nil slice, so an empty collection encodes as [].
func findAll(ctx context.Context, coll *mongo.Collection) ([]bson.M, error) {
	if coll == nil {
		return nil, database.ErrNotConnected
	}
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read %s: %w", coll.Name(), err)
	}
	return docs, nil
}
