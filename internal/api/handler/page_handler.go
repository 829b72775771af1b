package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/core/domain"
	"github.com/infilects/client-admin/internal/core/ports"
)

// PageHandler serves the gated page routes. Unlike the /api routes, which
// answer 401/403, page gates redirect to the landing page so the frontend can
// show the sign-in screen.
type PageHandler struct {
	users   ports.UserService
	clients ports.ClientService
	// adminEmail, when set, is admitted to the admin page even before a user
	// record exists for it (first-boot bootstrap).
	adminEmail string
	log        zerolog.Logger
}

func NewPageHandler(users ports.UserService, clients ports.ClientService, adminEmail string, log zerolog.Logger) *PageHandler {
	return &PageHandler{users: users, clients: clients, adminEmail: adminEmail, log: log}
}

// Admin gates on user-management privilege: the stored role must pass
// CanManageUsers, or the session email must match the bootstrap admin email.
// Everyone else is redirected to the landing page.
func (h *PageHandler) Admin(c echo.Context) error {
	email, ok := sessionEmail(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	ctx := c.Request().Context()

	user, err := h.users.FindByEmail(ctx, email)
	switch {
	case err == nil && domain.CanManageUsers(user.Role):
		// stored role grants access
	case h.adminEmail != "" && email == h.adminEmail:
		// bootstrap admin, record may not exist yet
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return err
	default:
		return c.Redirect(http.StatusFound, "/")
	}

	clients, err := h.clients.List(ctx)
	if err != nil {
		return err
	}
	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, map[string]any{
		"clients": clients,
		"users":   users,
	})
}

// Dashboard gates on having at least one assigned client; l0 admins pass
// regardless. Anonymous sessions and unknown users are redirected.
func (h *PageHandler) Dashboard(c echo.Context) error {
	email, ok := sessionEmail(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	ctx := c.Request().Context()

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}

	if len(user.AssignedClients) == 0 && user.Role != domain.RoleL0Admin {
		return c.Redirect(http.StatusFound, "/")
	}

	clients, err := h.clients.ListAssignedTo(ctx, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, map[string]any{
		"user":    user,
		"clients": clients,
	})
}
