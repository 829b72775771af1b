package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/api/metrics"
	"github.com/infilects/client-admin/internal/core/domain"
	"github.com/infilects/client-admin/internal/core/ports"
)

// ReconcileQueue accepts client ids whose assignment state should be
// re-checked in the background after a dual-write.
type ReconcileQueue interface {
	Enqueue(clientID string)
}

// ClientHandler exposes client CRUD and assignment routes.
type ClientHandler struct {
	clients     ports.ClientService
	assignments ports.AssignmentService
	users       ports.UserService
	reconcile   ReconcileQueue
	log         zerolog.Logger
}

func NewClientHandler(
	clients ports.ClientService,
	assignments ports.AssignmentService,
	users ports.UserService,
	reconcile ReconcileQueue,
	log zerolog.Logger,
) *ClientHandler {
	return &ClientHandler{
		clients:     clients,
		assignments: assignments,
		users:       users,
		reconcile:   reconcile,
		log:         log,
	}
}

// List handles GET /api/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, clients)
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		Name:           req.Name,
		Email:          req.Email,
		Company:        req.Company,
		Status:         domain.ClientStatus(req.Status),
		AssignedUserID: req.AssignedUserID,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(string(client.Status)).Inc()
	if client.AssignedUserID != nil {
		h.reconcile.Enqueue(client.ID)
	}

	return respond(c, http.StatusCreated, client)
}

// Assign handles PUT /api/clients/:id/assign. A null assigned_user_id
// unassigns the client.
//
// @Summary      Assign a client to a user
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      assignRequest  true  "New owner (null to unassign)"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/clients/{id}/assign [put]
func (h *ClientHandler) Assign(c echo.Context) error {
	clientID := c.Param("id")

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	client, err := h.assignments.Assign(c.Request().Context(), clientID, req.AssignedUserID)
	if err != nil {
		return err
	}

	target := "none"
	if req.AssignedUserID != nil {
		target = "user"
	}
	metrics.AssignmentsTotal.WithLabelValues(target).Inc()
	h.reconcile.Enqueue(client.ID)

	return respond(c, http.StatusOK, client)
}

// MyClients handles GET /api/my-clients. It resolves the authenticated user
// and returns their clients via the canonical client-side owner pointer.
//
// @Summary      List clients assigned to the current user
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/my-clients [get]
func (h *ClientHandler) MyClients(c echo.Context) error {
	email, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}

	clients, err := h.clients.ListAssignedTo(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, clients)
}
