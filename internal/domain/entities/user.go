package entities

import (
	"time"
)

// Role names a user's side of the marketplace.
type Role string

const (
	// RoleRequester marks a user who asks for services
	RoleRequester Role = "requester"

	// RoleProvider marks a user who offers services
	RoleProvider Role = "provider"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleRequester || r == RoleProvider
}

// User represents a requester or provider account. Location fields hold the
// last client-reported position; Rating is the denormalized mean of the
// provider's ratings, zero until the first rating lands.
type User struct {
	ID          string    `json:"id" db:"id"`
	FirstName   string    `json:"f_name" db:"f_name"`
	LastName    string    `json:"l_name" db:"l_name"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Role        Role      `json:"role" db:"role"`
	CurrentTown string    `json:"current_town" db:"current_town"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Rating      float64   `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Location is a client-reported position update.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CurrentTown string  `json:"current_town"`
}
