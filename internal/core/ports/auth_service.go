package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// AuthService handles local credential sign-up and sign-in. New accounts
// start at the viewer tier; an admin promotes them afterwards.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus the
	// resolved user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
