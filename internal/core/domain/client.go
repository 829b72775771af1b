package domain

import (
	"errors"
	"time"
)

// ClientStatus represents the lifecycle state of a customer record.
type ClientStatus string

const (
	StatusProspect ClientStatus = "prospect"
	StatusActive   ClientStatus = "active"
	StatusInactive ClientStatus = "inactive"
	StatusOnHold   ClientStatus = "on_hold"
)

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidStatus = errors.New("invalid client status")

// Valid reports whether s is a member of the status enumeration.
func (s ClientStatus) Valid() bool {
	switch s {
	case StatusProspect, StatusActive, StatusInactive, StatusOnHold:
		return true
	}
	return false
}

// Client is a customer record. AssignedUserID points at the single owning
// user, or is nil when unassigned; it is the canonical side of the
// assignment relationship, mirrored into User.AssignedClients.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Company        string       `json:"company"`
	Status         ClientStatus `json:"status"`
	AssignedUserID *string      `json:"assigned_user_id"`
	Notes          string       `json:"notes"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
