package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Type        ListingType        `bson:"type" json:"type"`
	Date        time.Time          `bson:"date" json:"date"`
}
