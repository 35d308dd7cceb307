package registry

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

// WishLists is append/list/delete only.
type WishLists struct {
	col store.Collection
}

func NewWishLists(col store.Collection) *WishLists {
	return &WishLists{col: col}
}

func (w *WishLists) ForGuest(ctx context.Context, email string) ([]models.WishListEntry, error) {
	if email == "" {
		return []models.WishListEntry{}, nil
	}
	entries := []models.WishListEntry{}
	if err := w.col.Find(ctx, bson.M{"email": email}, &entries); err != nil {
		return nil, apperr.Persistence("find wishlist", err)
	}
	return entries, nil
}

func (w *WishLists) Add(ctx context.Context, entry models.WishListEntry) (store.InsertResult, error) {
	res, err := w.col.InsertOne(ctx, entry)
	if err != nil {
		return store.InsertResult{}, apperr.Persistence("insert wishlist entry", err)
	}
	return res, nil
}

func (w *WishLists) Remove(ctx context.Context, id string) (store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return store.DeleteResult{}, err
	}
	res, err := w.col.DeleteOne(ctx, store.ByID(oid))
	if err != nil {
		return store.DeleteResult{}, apperr.Persistence("delete wishlist entry", err)
	}
	return res, nil
}
