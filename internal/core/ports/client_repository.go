package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// ClientRepository defines persistence operations for customer records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// List returns all clients, newest first.
	List(ctx context.Context) ([]*domain.Client, error)
	// ListByAssignedUser returns the clients whose assigned_user_id equals
	// userID, newest first. This reads the canonical client-side pointer, not
	// the denormalized user-side set.
	ListByAssignedUser(ctx context.Context, userID string) ([]*domain.Client, error)
	// SetAssignedUser updates the client's owner pointer (nil clears it) and
	// returns the updated record.
	SetAssignedUser(ctx context.Context, clientID string, userID *string) (*domain.Client, error)
}
