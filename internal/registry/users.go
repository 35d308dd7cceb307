package registry

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

// Users manages account records keyed by email. Accounts appear on first
// sign-in and are never hard-deleted.
type Users struct {
	col store.Collection
}

func NewUsers(col store.Collection) *Users {
	return &Users{col: col}
}

// Create is the idempotent first-sign-in insert. Every new account is
// forced to role=guest regardless of the submitted payload; an existing
// email is reported, not treated as an error.
func (u *Users) Create(ctx context.Context, user models.User) (store.InsertResult, bool, error) {
	user.Role = models.RoleGuest

	var existing models.User
	switch err := u.col.FindOne(ctx, bson.M{"email": user.Email}, &existing); {
	case err == nil:
		return store.InsertResult{}, false, nil
	case err != store.ErrNotFound:
		return store.InsertResult{}, false, apperr.Persistence("find user", err)
	}

	res, err := u.col.InsertOne(ctx, user)
	if err != nil {
		return store.InsertResult{}, false, apperr.Persistence("insert user", err)
	}
	return res, true, nil
}

func (u *Users) All(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := u.col.Find(ctx, bson.M{}, &users); err != nil {
		return nil, apperr.Persistence("find users", err)
	}
	return users, nil
}

func (u *Users) Get(ctx context.Context, email string) (models.User, error) {
	var user models.User
	switch err := u.col.FindOne(ctx, bson.M{"email": email}, &user); {
	case err == nil:
		return user, nil
	case err == store.ErrNotFound:
		return models.User{}, apperr.NotFound("user not found")
	default:
		return models.User{}, apperr.Persistence("find user", err)
	}
}

// UpdateProfile is the self-service update of display fields. Role is
// intentionally not settable here.
func (u *Users) UpdateProfile(ctx context.Context, email, name, image string) (store.UpdateResult, error) {
	res, err := u.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"name": name, "image": image})
	if err != nil {
		return store.UpdateResult{}, apperr.Persistence("update user", err)
	}
	return res, nil
}

// SetRole is the admin promotion path; only host and admin are legal
// targets.
func (u *Users) SetRole(ctx context.Context, id string, role models.Role) (store.UpdateResult, error) {
	if role != models.RoleHost && role != models.RoleAdmin {
		return store.UpdateResult{}, apperr.Validationf("cannot assign role %q", role)
	}
	oid, err := parseID(id)
	if err != nil {
		return store.UpdateResult{}, err
	}
	res, err := u.col.UpdateOne(ctx, store.ByID(oid), bson.M{"role": role})
	if err != nil {
		return store.UpdateResult{}, apperr.Persistence("update user role", err)
	}
	return res, nil
}

// RequestHost records a guest's wish to become a host by parking the
// account in the pending role until an admin promotes it.
func (u *Users) RequestHost(ctx context.Context, email string) (store.UpdateResult, error) {
	res, err := u.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"role": models.RoleHostPending})
	if err != nil {
		return store.UpdateResult{}, apperr.Persistence("update user role", err)
	}
	return res, nil
}

// RoleOf resolves an account's role; an unknown email yields the empty
// role, not an error, so role checks read as plain booleans.
func (u *Users) RoleOf(ctx context.Context, email string) (models.Role, error) {
	var user models.User
	switch err := u.col.FindOne(ctx, bson.M{"email": email}, &user); {
	case err == nil:
		return user.Role, nil
	case err == store.ErrNotFound:
		return "", nil
	default:
		return "", apperr.Persistence("find user", err)
	}
}
