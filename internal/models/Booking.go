package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingGuest is the embedded guest identity on a booking document.
// Bookings are queried by the dotted path "guest.email".
type BookingGuest struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
}

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Guest     BookingGuest       `bson:"guest" json:"guest"`
	ListingID primitive.ObjectID `bson:"listingId" json:"listingId"`
	Kind      ListingKind        `bson:"kind,omitempty" json:"kind,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
