package models

import "time"

// User roles.
const (
	RoleClient     = "client"
	RoleLawyer     = "lawyer"
	RoleFirmLawyer = "firm_lawyer"
)

// User is the identity record resolved from a bearer credential.
// Registration and login live outside this service; the fields here are
// what the booking engine and channel assignment need.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	FullName      string    `bson:"full_name" json:"full_name"`
	UserType      string    `bson:"user_type" json:"user_type"` // client, lawyer, firm_lawyer
	State         string    `bson:"state,omitempty" json:"state,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	OfficeAddress string    `bson:"office_address,omitempty" json:"office_address,omitempty"`
	PasswordHash  string    `bson:"password_hash,omitempty" json:"-"`
	TokenHash     string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// IsLawyer reports whether the user may manage a calendar.
func (u *User) IsLawyer() bool {
	return u.UserType == RoleLawyer || u.UserType == RoleFirmLawyer
}
