package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// UserRepository defines persistence operations for team members.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the user's role and returns the updated record.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// AddAssignedClient adds clientID to the user's assigned set. Idempotent:
	// adding an id already present is a no-op.
	AddAssignedClient(ctx context.Context, userID, clientID string) error
	// RemoveAssignedClient removes clientID from the user's assigned set.
	RemoveAssignedClient(ctx context.Context, userID, clientID string) error
	// ReleaseClient removes clientID from the assigned set of every user
	// except the one identified by exceptUserID (nil = every user). Returns
	// the number of users whose set was modified.
	ReleaseClient(ctx context.Context, clientID string, exceptUserID *string) (int64, error)
}
