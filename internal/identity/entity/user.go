package entity

import (
	"strings"
	"time"
)

// User is the identity account record backing every workflow in this module.
type User struct {
	ID             int64
	Email          string
	Phone          string
	FirstName      string
	LastName       string
	Password       string
	IsAdmin        bool
	ResetOTP       *int64
	ResetExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NewUser carries the attributes for creating an account.
// The password hash travels separately so entities never hold plaintext.
type NewUser struct {
	ID        int64
	Email     string
	Phone     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// ProfileUpdateData carries optional profile changes. Nil fields are left
// untouched by the storage layer.
type ProfileUpdateData struct {
	FirstName *string
	LastName  *string
	Phone     *string
	// Password, when set, is already hashed.
	Password *string
}
