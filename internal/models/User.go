package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the marketplace-wide user role.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
	// RoleHostPending marks a guest who has asked an admin to promote them.
	RoleHostPending Role = "Make me Host"
)

// ParseRole rejects anything outside the four known roles so unknown
// values never reach storage.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleHost, RoleAdmin, RoleHostPending:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Role  Role               `bson:"role" json:"role"`
}
