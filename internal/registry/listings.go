package registry

import (
	"context"

	logrus "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

// Listings owns the room and car registries. Both kinds share one shape
// and one set of operations; the kind picks the backing collection.
type Listings struct {
	cols map[models.ListingKind]store.Collection
}

func NewListings(rooms, cars store.Collection) *Listings {
	return &Listings{cols: map[models.ListingKind]store.Collection{
		models.KindRooms: rooms,
		models.KindCars:  cars,
	}}
}

func (l *Listings) col(kind models.ListingKind) (store.Collection, error) {
	col, ok := l.cols[kind]
	if !ok {
		return nil, apperr.Validationf("unknown listing kind %q", kind)
	}
	return col, nil
}

// Create stores a new listing. Whatever the host submitted, it always
// enters moderation unbooked: status=pending, booked=false.
func (l *Listings) Create(ctx context.Context, kind models.ListingKind, listing models.Listing) (store.InsertResult, error) {
	col, err := l.col(kind)
	if err != nil {
		return store.InsertResult{}, err
	}

	if listing.Type == "" {
		listing.Type = models.TypeStandard
	}
	if _, err := models.ParseListingType(string(listing.Type)); err != nil {
		return store.InsertResult{}, apperr.Validation(err.Error())
	}

	listing.Status = models.StatusPending
	listing.Booked = false

	res, err := col.InsertOne(ctx, listing)
	if err != nil {
		return store.InsertResult{}, apperr.Persistence("insert listing", err)
	}
	logrus.WithFields(logrus.Fields{
		"kind":  kind,
		"id":    res.InsertedID.Hex(),
		"title": listing.Title,
	}).Info("listing created")
	return res, nil
}

// All is the unfiltered dump backing GET /rooms and GET /cars.
func (l *Listings) All(ctx context.Context, kind models.ListingKind) ([]models.Listing, error) {
	return l.find(ctx, kind, bson.M{})
}

func (l *Listings) Featured(ctx context.Context, kind models.ListingKind) ([]models.Listing, error) {
	return l.find(ctx, kind, bson.M{"type": models.TypeFeatured})
}

func (l *Listings) Approved(ctx context.Context, kind models.ListingKind) ([]models.Listing, error) {
	return l.find(ctx, kind, bson.M{"status": models.StatusApproved})
}

func (l *Listings) find(ctx context.Context, kind models.ListingKind, filter bson.M) ([]models.Listing, error) {
	col, err := l.col(kind)
	if err != nil {
		return nil, err
	}
	listings := []models.Listing{}
	if err := col.Find(ctx, filter, &listings); err != nil {
		return nil, apperr.Persistence("find listings", err)
	}
	return listings, nil
}

func (l *Listings) Get(ctx context.Context, kind models.ListingKind, id string) (models.Listing, error) {
	col, err := l.col(kind)
	if err != nil {
		return models.Listing{}, err
	}
	oid, err := parseID(id)
	if err != nil {
		return models.Listing{}, err
	}

	var listing models.Listing
	switch err := col.FindOne(ctx, store.ByID(oid), &listing); {
	case err == nil:
		return listing, nil
	case err == store.ErrNotFound:
		return models.Listing{}, apperr.NotFound("listing not found")
	default:
		return models.Listing{}, apperr.Persistence("find listing", err)
	}
}

// SetStatus overwrites the moderation status unconditionally. There is
// no transition check: re-approving an approved listing is a no-op
// success, and approved may move straight to denied.
func (l *Listings) SetStatus(ctx context.Context, kind models.ListingKind, id string, status models.ListingStatus) (store.UpdateResult, error) {
	if status != models.StatusApproved && status != models.StatusDenied {
		return store.UpdateResult{}, apperr.Validationf("status transition to %q is not allowed", status)
	}
	res, err := l.set(ctx, kind, id, bson.M{"status": status})
	if err == nil {
		logrus.WithFields(logrus.Fields{"kind": kind, "id": id, "status": status}).Info("listing status changed")
	}
	return res, err
}

// SetBooked overwrites the booked flag unconditionally. Two concurrent
// bookings against one listing both land; the later write simply wins.
func (l *Listings) SetBooked(ctx context.Context, kind models.ListingKind, id string, booked bool) (store.UpdateResult, error) {
	return l.set(ctx, kind, id, bson.M{"booked": booked})
}

func (l *Listings) set(ctx context.Context, kind models.ListingKind, id string, set bson.M) (store.UpdateResult, error) {
	col, err := l.col(kind)
	if err != nil {
		return store.UpdateResult{}, err
	}
	oid, err := parseID(id)
	if err != nil {
		return store.UpdateResult{}, err
	}
	res, err := col.UpdateOne(ctx, store.ByID(oid), set)
	if err != nil {
		return store.UpdateResult{}, apperr.Persistence("update listing", err)
	}
	return res, nil
}

// Search returns the listings whose stored availability window equals
// the requested one exactly. See ParseSearchQuery for the semantics.
func (l *Listings) Search(ctx context.Context, kind models.ListingKind, q SearchQuery) ([]models.Listing, error) {
	return l.find(ctx, kind, q.filter())
}
