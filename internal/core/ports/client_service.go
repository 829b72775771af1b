package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// CreateClientInput carries all data needed to create a new client record.
type CreateClientInput struct {
	Name    string
	Email   string
	Company string
	// Status defaults to prospect when empty.
	Status domain.ClientStatus
	// AssignedUserID optionally assigns an owner at creation time; the
	// assignment runs through the AssignmentService so both sides of the
	// relationship stay consistent.
	AssignedUserID *string
	Notes          string
}

// ClientService defines use-case operations for customer records.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	ListAssignedTo(ctx context.Context, userID string) ([]*domain.Client, error)
}
