package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingKind selects between the two listing registries.
type ListingKind string

const (
	KindRooms ListingKind = "rooms"
	KindCars  ListingKind = "cars"
)

func ParseListingKind(s string) (ListingKind, error) {
	switch ListingKind(s) {
	case KindRooms, KindCars:
		return ListingKind(s), nil
	}
	return "", fmt.Errorf("unknown listing kind %q", s)
}

// ListingStatus is the admin moderation state of a listing.
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusDenied   ListingStatus = "denied"
)

func ParseListingStatus(s string) (ListingStatus, error) {
	switch ListingStatus(s) {
	case StatusPending, StatusApproved, StatusDenied:
		return ListingStatus(s), nil
	}
	return "", fmt.Errorf("unknown listing status %q", s)
}

// ListingType flags promotional listings.
type ListingType string

const (
	TypeStandard ListingType = "Standard"
	TypeFeatured ListingType = "Featured"
)

func ParseListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case TypeStandard, TypeFeatured:
		return ListingType(s), nil
	}
	return "", fmt.Errorf("unknown listing type %q", s)
}

// Host identifies the owner shown on a listing card.
type Host struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Listing is the shared room/car shape. Rooms fill Guest; cars fill
// TotalSeat/Baggage/Doors/CarType. Both live in separate collections.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Host        Host               `bson:"host" json:"host"`
	Location    string             `bson:"location" json:"location"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`

	// Room capacity
	Guest int `bson:"guest,omitempty" json:"guest,omitempty"`

	// Car capacity
	TotalSeat int    `bson:"total_seat,omitempty" json:"total_seat,omitempty"`
	Baggage   int    `bson:"baggage,omitempty" json:"baggage,omitempty"`
	Doors     int    `bson:"doors,omitempty" json:"doors,omitempty"`
	CarType   string `bson:"carType,omitempty" json:"carType,omitempty"`

	Facilities []string `bson:"facilities,omitempty" json:"facilities,omitempty"`

	AvailableCheckInMonth  string `bson:"availableCheckInMonth" json:"availableCheckInMonth"`
	AvailableCheckInDate   int    `bson:"availableCheckInDate" json:"availableCheckInDate"`
	AvailableCheckOutMonth string `bson:"availableCheckOutMonth" json:"availableCheckOutMonth"`
	AvailableCheckOutDate  int    `bson:"availableCheckOutDate" json:"availableCheckOutDate"`

	Status ListingStatus `bson:"status" json:"status"`
	Booked bool          `bson:"booked" json:"booked"`
	Type   ListingType   `bson:"type" json:"type"`
}
