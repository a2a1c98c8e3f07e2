package repository

import (
	"context"
	"errors"
	"fmt"

	"equisports-backend/internal/database"
	"equisports-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EquipmentRepo struct {
	collection *mongo.Collection
}

func NewEquipmentRepo(db *mongo.Database, name string) *EquipmentRepo {
	return &EquipmentRepo{
		collection: database.Collection(db, name),
	}
}

func (r *EquipmentRepo) Create(ctx context.Context, equipment bson.D) (*models.InsertResult, error) {
	return insertOne(ctx, r.collection, equipment)
}

func (r *EquipmentRepo) FindAll(ctx context.Context) ([]bson.M, error) {
	return findAll(ctx, r.collection)
}

// FindByID returns nil, nil when no document has the given id.
func (r *EquipmentRepo) FindByID(ctx context.Context, id bson.ObjectID) (bson.M, error) {
	if r.collection == nil {
		return nil, database.ErrNotConnected
	}
	var equipment bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&equipment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find equipment %s: %w", id.Hex(), err)
	}
	return equipment, nil
}

// UpdateByID sets the given fields on the document with the given id. The
// caller decides what a zero matched count means.
func (r *EquipmentRepo) UpdateByID(ctx context.Context, id bson.ObjectID, fields bson.D) (*models.UpdateResult, error) {
	if r.collection == nil {
		return nil, database.ErrNotConnected
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return nil, fmt.Errorf("update equipment %s: %w", id.Hex(), err)
	}
	return models.NewUpdateResult(result), nil
}
