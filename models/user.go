package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// User represents a platform account (customer, vendor or admin).
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Role           string    `bson:"role" json:"role"`
	ProfilePicture string    `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	TokenHash      string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary carries the public fields attached to bookings, reviews and
// conversations.
type UserSummary struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Email          string `bson:"email" json:"email,omitempty"`
	Role           string `bson:"role" json:"role,omitempty"`
	ProfilePicture string `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
}

// Summary strips a user down to its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID             string `json:"id"`
	Token          string `json:"token"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
