package domain

import (
	"errors"
	"time"
)

// Role is the privilege tier of a team member, ordered low to high:
//
//	viewer < developer < manager < l1_admin < l0_admin
type Role string

const (
	RoleViewer    Role = "viewer"
	RoleDeveloper Role = "developer"
	RoleManager   Role = "manager"
	RoleL1Admin   Role = "l1_admin"
	RoleL0Admin   Role = "l0_admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleDeveloper, RoleManager, RoleL1Admin, RoleL0Admin:
		return true
	}
	return false
}

// User models a team member. AssignedClients is the denormalized set of
// client ids owned by this user; it carries no duplicates and its order is
// irrelevant. Users are never hard-deleted.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	Avatar          string    `json:"avatar,omitempty"`
	AssignedClients []string  `json:"assigned_clients"`
	IsActive        bool      `json:"is_active"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
