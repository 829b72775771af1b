package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// UserService defines use-case operations for team members.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	// SetRole changes a user's privilege tier. The role must be a member of
	// the role enumeration.
	SetRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
