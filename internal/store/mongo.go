package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo adapts a *mongo.Collection to the Collection contract.
type Mongo struct {
	col *mongo.Collection
}

func NewMongo(col *mongo.Collection) *Mongo {
	return &Mongo{col: col}
}

func (m *Mongo) Find(ctx context.Context, filter bson.M, out any) error {
	cur, err := m.col.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (m *Mongo) FindOne(ctx context.Context, filter bson.M, out any) error {
	err := m.col.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) InsertOne(ctx context.Context, doc any) (InsertResult, error) {
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return InsertResult{}, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return InsertResult{InsertedID: id}, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateResult, error) {
	res, err := m.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *Mongo) DeleteOne(ctx context.Context, filter bson.M) (DeleteResult, error) {
	res, err := m.col.DeleteOne(ctx, filter)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}
