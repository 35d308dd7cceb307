package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishListEntry is a listing snapshot saved against a guest's email.
type WishListEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Location string             `bson:"location" json:"location"`
	Title    string             `bson:"title" json:"title"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}
