// Package store is the thin contract over a document collection. The
// Mongo implementation backs production; the Memory implementation backs
// tests with the same filter semantics.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

// Collection is the persistence surface the registries depend on.
// Filters are exact-match bson documents; dotted keys address embedded
// fields ("guest.email"). out is a pointer to a struct (FindOne) or to a
// slice (Find).
type Collection interface {
	Find(ctx context.Context, filter bson.M, out any) error
	FindOne(ctx context.Context, filter bson.M, out any) error
	InsertOne(ctx context.Context, doc any) (InsertResult, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (DeleteResult, error)
}

// Result shapes mirror the driver's and marshal to the response bodies
// the clients already consume.

type InsertResult struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ByID builds the canonical single-document filter.
func ByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}
