package registry

import (
	"context"
	"time"

	logrus "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

// Bookings is the reservation workflow: a booking records a guest
// against one listing and flips that listing's booked flag on.
type Bookings struct {
	col      store.Collection
	listings *Listings
	now      func() time.Time
}

func NewBookings(col store.Collection, listings *Listings) *Bookings {
	return &Bookings{col: col, listings: listings, now: time.Now}
}

// Create inserts the booking verbatim and marks the referenced listing
// as booked. The flag write is an unconditional overwrite with no
// compare-and-swap: two concurrent bookings of the same listing both
// persist, and the later SetBooked simply wins. Known race, kept.
func (b *Bookings) Create(ctx context.Context, booking models.Booking) (store.InsertResult, error) {
	kind := booking.Kind
	if kind == "" {
		kind = models.KindRooms
	}
	if _, err := models.ParseListingKind(string(kind)); err != nil {
		return store.InsertResult{}, apperr.Validation(err.Error())
	}
	booking.Kind = kind

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = b.now().UTC()
	}

	res, err := b.col.InsertOne(ctx, booking)
	if err != nil {
		return store.InsertResult{}, apperr.Persistence("insert booking", err)
	}

	if !booking.ListingID.IsZero() {
		if _, err := b.listings.SetBooked(ctx, kind, booking.ListingID.Hex(), true); err != nil {
			// The booking itself is saved; a failed flag write only
			// loses the booked marker.
			logrus.WithError(err).WithField("listingId", booking.ListingID.Hex()).
				Warn("could not mark listing booked")
		}
	}

	logrus.WithFields(logrus.Fields{
		"id":    res.InsertedID.Hex(),
		"guest": booking.Guest.Email,
	}).Info("booking created")
	return res, nil
}

// ForGuest lists a guest's bookings. An empty email short-circuits to an
// empty list without touching storage.
func (b *Bookings) ForGuest(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return []models.Booking{}, nil
	}
	bookings := []models.Booking{}
	if err := b.col.Find(ctx, bson.M{"guest.email": email}, &bookings); err != nil {
		return nil, apperr.Persistence("find bookings", err)
	}
	return bookings, nil
}

// Delete removes a booking by id. It deliberately does not clear the
// listing's booked flag; the listing stays marked booked afterwards.
func (b *Bookings) Delete(ctx context.Context, id string) (store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return store.DeleteResult{}, err
	}
	res, err := b.col.DeleteOne(ctx, store.ByID(oid))
	if err != nil {
		return store.DeleteResult{}, apperr.Persistence("delete booking", err)
	}
	return res, nil
}
