package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/core/domain"
	"github.com/infilects/client-admin/internal/core/ports"
)

type ClientService struct {
	clients     ports.ClientRepository
	assignments ports.AssignmentService
	log         zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, assignments ports.AssignmentService, log zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, assignments: assignments, log: log}
}

// Create inserts a new client record. Status defaults to prospect. When an
// initial owner is requested the record is inserted unassigned and then
// routed through the assignment service, so the user-side set is updated the
// same way it is for any later reassignment.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusProspect
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Status:    status,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Str("company", input.Company).Msg("failed to create client")
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("status", string(created.Status)).Msg("client created")

	if input.AssignedUserID != nil && *input.AssignedUserID != "" {
		assigned, err := s.assignments.Assign(ctx, created.ID, input.AssignedUserID)
		if err != nil {
			return nil, fmt.Errorf("create client: initial assignment: %w", err)
		}
		return assigned, nil
	}

	return created, nil
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

// ListAssignedTo returns the clients owned by userID, derived from the
// canonical client-side pointer rather than the user's denormalized set.
func (s *ClientService) ListAssignedTo(ctx context.Context, userID string) ([]*domain.Client, error) {
	return s.clients.ListByAssignedUser(ctx, userID)
}
