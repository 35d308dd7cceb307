package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

func newTestListings() (*Listings, *store.Memory, *store.Memory) {
	rooms := store.NewMemory()
	cars := store.NewMemory()
	return NewListings(rooms, cars), rooms, cars
}

func sampleRoom(title string) models.Listing {
	return models.Listing{
		Host:     models.Host{Name: "Hana", Email: "hana@host.io"},
		Location: "Paris",
		Title:    title,
		Price:    200,
		Guest:    2,

		AvailableCheckInMonth:  "June",
		AvailableCheckInDate:   10,
		AvailableCheckOutMonth: "June",
		AvailableCheckOutDate:  15,
	}
}

func TestCreateListingDefaults(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	// Submitted status/booked must be overwritten on the way in.
	room := sampleRoom("Loft")
	room.Status = models.StatusApproved
	room.Booked = true

	res, err := listings.Create(ctx, models.KindRooms, room)
	require.NoError(t, err)

	got, err := listings.Get(ctx, models.KindRooms, res.InsertedID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.False(t, got.Booked)
	assert.Equal(t, models.TypeStandard, got.Type)
}

func TestCreateListingRejectsUnknownType(t *testing.T) {
	listings, _, _ := newTestListings()

	room := sampleRoom("Loft")
	room.Type = models.ListingType("Premium")

	_, err := listings.Create(context.Background(), models.KindRooms, room)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSetStatusLastWriteWins(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	res, err := listings.Create(ctx, models.KindRooms, sampleRoom("Loft"))
	require.NoError(t, err)
	id := res.InsertedID.Hex()

	up, err := listings.SetStatus(ctx, models.KindRooms, id, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), up.ModifiedCount)

	// No transition check: approved moves straight to denied.
	_, err = listings.SetStatus(ctx, models.KindRooms, id, models.StatusDenied)
	require.NoError(t, err)

	got, err := listings.Get(ctx, models.KindRooms, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDenied, got.Status)

	// Re-denying is a no-op success, not an error.
	up, err = listings.SetStatus(ctx, models.KindRooms, id, models.StatusDenied)
	require.NoError(t, err)
	assert.Equal(t, int64(1), up.MatchedCount)
	assert.Equal(t, int64(0), up.ModifiedCount)
}

func TestSetStatusRejectsPending(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	res, err := listings.Create(ctx, models.KindRooms, sampleRoom("Loft"))
	require.NoError(t, err)

	_, err = listings.SetStatus(ctx, models.KindRooms, res.InsertedID.Hex(), models.StatusPending)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestFeaturedFilter(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	featured := sampleRoom("Featured loft")
	featured.Type = models.TypeFeatured
	_, err := listings.Create(ctx, models.KindRooms, featured)
	require.NoError(t, err)
	_, err = listings.Create(ctx, models.KindRooms, sampleRoom("Plain loft"))
	require.NoError(t, err)

	got, err := listings.Featured(ctx, models.KindRooms)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Featured loft", got[0].Title)

	all, err := listings.All(ctx, models.KindRooms)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestKindsAreSeparateRegistries(t *testing.T) {
	listings, rooms, cars := newTestListings()
	ctx := context.Background()

	_, err := listings.Create(ctx, models.KindRooms, sampleRoom("Loft"))
	require.NoError(t, err)

	car := sampleRoom("Sedan")
	car.Guest = 0
	car.TotalSeat = 4
	car.Doors = 4
	_, err = listings.Create(ctx, models.KindCars, car)
	require.NoError(t, err)

	assert.Equal(t, 1, rooms.Len())
	assert.Equal(t, 1, cars.Len())

	_, err = listings.All(ctx, models.ListingKind("boats"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetListingErrors(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	_, err := listings.Get(ctx, models.KindRooms, "64b000000000000000000000")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = listings.Get(ctx, models.KindRooms, "not-a-hex-id")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSetBookedOverwrite(t *testing.T) {
	listings, _, _ := newTestListings()
	ctx := context.Background()

	res, err := listings.Create(ctx, models.KindRooms, sampleRoom("Loft"))
	require.NoError(t, err)
	id := res.InsertedID.Hex()

	_, err = listings.SetBooked(ctx, models.KindRooms, id, true)
	require.NoError(t, err)

	got, err := listings.Get(ctx, models.KindRooms, id)
	require.NoError(t, err)
	assert.True(t, got.Booked)

	_, err = listings.SetBooked(ctx, models.KindRooms, id, false)
	require.NoError(t, err)

	got, err = listings.Get(ctx, models.KindRooms, id)
	require.NoError(t, err)
	assert.False(t, got.Booked)
}
