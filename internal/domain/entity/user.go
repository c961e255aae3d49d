// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the storefront, either a customer or a back-office administrator.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never leaves the service.
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Summary returns the public projection of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserSummary is the minimal user projection embedded in order responses.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// Identity is the verified caller of a request, produced by the authentication middleware.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
