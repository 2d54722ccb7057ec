package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// Role classifies an identity record for authorization purposes.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity record stored per unique email.
type User struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string        `bson:"email" json:"email"`
	Name    string        `bson:"name,omitempty" json:"name,omitempty"`
	Role    Role          `bson:"role,omitempty" json:"role,omitempty"`
	Phone   string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string        `bson:"address,omitempty" json:"address,omitempty"`
	Image   string        `bson:"image,omitempty" json:"image,omitempty"`
	Rating  string        `bson:"rating,omitempty" json:"rating,omitempty"`
	Review  string        `bson:"review,omitempty" json:"review,omitempty"`
}

// UserProfile carries the mutable profile fields written by upsert
// and merge-update. Role is deliberately absent: it only changes
// through the admin grant operation.
type UserProfile struct {
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
	Rating  string `bson:"rating,omitempty" json:"rating,omitempty"`
	Review  string `bson:"review,omitempty" json:"review,omitempty"`
}

// Review is the projection of a user document that carries review fields.
type Review struct {
	Name   string `bson:"name,omitempty" json:"name,omitempty"`
	Rating string `bson:"rating,omitempty" json:"rating,omitempty"`
	Review string `bson:"review" json:"review"`
}
