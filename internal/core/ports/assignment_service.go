package ports

import (
	"context"

	"github.com/infilects/client-admin/internal/core/domain"
)

// AssignmentService moves a client's assignment from one user (or none) to
// another (or none), keeping both sides of the relationship consistent.
type AssignmentService interface {
	// Assign sets the client's owner. A nil userID unassigns. The write order
	// is fixed: client pointer first, then add to the new owner's set, then
	// remove from the previous owner's set (skipped when old == new).
	Assign(ctx context.Context, clientID string, userID *string) (*domain.Client, error)
}

// AssignmentReconciler repairs the denormalized user-side assignment sets for
// a single client: the current owner's set gains the client id, every other
// user's set loses it. Returns the number of stale memberships released.
// Reconciling a consistent or missing client is a no-op.
type AssignmentReconciler interface {
	Reconcile(ctx context.Context, clientID string) (int64, error)
}
