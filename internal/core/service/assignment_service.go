package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/core/domain"
	"github.com/infilects/client-admin/internal/core/ports"
)

// AssignmentService implements the single-owner assignment relationship
// between clients and users. The client's assigned_user_id is the canonical
// side; each user's assigned_clients set is a denormalized mirror kept in
// step by Assign and repaired by Reconcile.
type AssignmentService struct {
	clients ports.ClientRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewAssignmentService(clients ports.ClientRepository, users ports.UserRepository, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{clients: clients, users: users, log: log}
}

// Assign moves the client's assignment to userID (nil unassigns).
//
// Both the client and a non-nil target user must exist. The writes are
// sequential, in a fixed order: set the client pointer, add to the new
// owner's set, then remove from the previous owner's set. Removal is skipped
// when the owner does not change, so assigning the same user twice is a
// duplicate-safe no-op on the set side. Callers are expected to enqueue a
// reconcile pass for the client afterwards to compensate for a torn write.
func (s *AssignmentService) Assign(ctx context.Context, clientID string, userID *string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("assign: %w", err)
	}
	if userID != nil {
		if _, err := s.users.FindByID(ctx, *userID); err != nil {
			return nil, fmt.Errorf("assign: target user: %w", err)
		}
	}

	oldUserID := client.AssignedUserID

	updated, err := s.clients.SetAssignedUser(ctx, clientID, userID)
	if err != nil {
		return nil, fmt.Errorf("assign: set owner: %w", err)
	}

	if userID != nil {
		if err := s.users.AddAssignedClient(ctx, *userID, clientID); err != nil {
			return nil, fmt.Errorf("assign: add to new owner: %w", err)
		}
	}

	if oldUserID != nil && (userID == nil || *oldUserID != *userID) {
		if err := s.users.RemoveAssignedClient(ctx, *oldUserID, clientID); err != nil {
			return nil, fmt.Errorf("assign: remove from previous owner: %w", err)
		}
	}

	evt := s.log.Info().Str("client_id", clientID)
	if userID != nil {
		evt = evt.Str("user_id", *userID)
	}
	evt.Msg("client assignment updated")

	return updated, nil
}

// Reconcile restores the bidirectional invariant for one client: the current
// owner's assigned set contains the client id and no other user's set does.
// It is idempotent and safe to run at any time; a missing client is a no-op.
func (s *AssignmentService) Reconcile(ctx context.Context, clientID string) (int64, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if errors.Is(err, domain.ErrClientNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reconcile: %w", err)
	}

	owner := client.AssignedUserID
	if owner != nil {
		err := s.users.AddAssignedClient(ctx, *owner, clientID)
		if errors.Is(err, domain.ErrUserNotFound) {
			// The owner record vanished out from under the pointer; leave the
			// pointer alone and just release everyone else.
			s.log.Warn().Str("client_id", clientID).Str("user_id", *owner).Msg("assigned user missing during reconcile")
		} else if err != nil {
			return 0, fmt.Errorf("reconcile: restore owner membership: %w", err)
		}
	}

	released, err := s.users.ReleaseClient(ctx, clientID, owner)
	if err != nil {
		return 0, fmt.Errorf("reconcile: release stale owners: %w", err)
	}
	if released > 0 {
		s.log.Warn().Str("client_id", clientID).Int64("released", released).Msg("repaired stale assignment memberships")
	}
	return released, nil
}
