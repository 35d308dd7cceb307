// Package registry holds the domain operations over the document store:
// listing moderation and search, the booking workflow, user roles, and
// the pass-through wishlist/blog collections.
package registry

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NOMAN1802/ibooking/internal/apperr"
)

// parseID converts a 24-character hex path parameter into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Validationf("invalid document id %q", id)
	}
	return oid, nil
}
