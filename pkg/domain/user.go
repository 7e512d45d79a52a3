package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseUserID parses a UUID string into a UserID.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}

	return UserID(u), nil
}

// Role is the portal role of a user. It decides which lifecycle actions a
// user may perform on abstracts.
type Role string

const (
	// RoleStudent may submit abstracts and manage its own pending submissions.
	RoleStudent Role = "student"
	// RoleFaculty may additionally review abstracts.
	RoleFaculty Role = "faculty"
	// RoleAdmin may do everything, including deleting any abstract.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanReview reports whether users with this role may review abstracts.
func (r Role) CanReview() bool {
	return r == RoleFaculty || r == RoleAdmin
}

// Profile is the portal-side record of an authenticated user.
type Profile struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
