package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/infilects/client-admin/internal/core/domain"
)

const bootstrapAdmin = "root@example.com"

func strPtr(s string) *string { return &s }

func newPageHandler(users *stubUserService, clients *stubClientService) *PageHandler {
	return NewPageHandler(users, clients, bootstrapAdmin, discardLogger)
}

func TestAdminPage_AnonymousRedirects(t *testing.T) {
	h := newPageHandler(newStubUserService(), &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/admin", "")

	if err := h.Admin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}
}

func TestAdminPage_UnknownUserRedirects(t *testing.T) {
	h := newPageHandler(newStubUserService(), &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/admin", "")
	c.Set("email", "ghost@example.com")

	if err := h.Admin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
}

func TestAdminPage_InsufficientRoleRedirects(t *testing.T) {
	users := newStubUserService(&domain.User{ID: "u1", Email: "mgr@example.com", Role: domain.RoleManager})
	h := newPageHandler(users, &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/admin", "")
	c.Set("email", "mgr@example.com")

	if err := h.Admin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 for manager", rec.Code)
	}
}

func TestAdminPage_L0AdminPasses(t *testing.T) {
	users := newStubUserService(&domain.User{ID: "u1", Email: "boss@example.com", Role: domain.RoleL0Admin})
	h := newPageHandler(users, &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/admin", "")
	c.Set("email", "boss@example.com")

	if err := h.Admin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Clients []json.RawMessage `json:"clients"`
			Users   []json.RawMessage `json:"users"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
}

func TestAdminPage_BootstrapEmailPassesWithoutRecord(t *testing.T) {
	h := newPageHandler(newStubUserService(), &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/admin", "")
	c.Set("email", bootstrapAdmin)

	if err := h.Admin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for bootstrap admin", rec.Code)
	}
}

func TestDashboard_AnonymousRedirects(t *testing.T) {
	h := newPageHandler(newStubUserService(), &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/dashboard", "")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
}

func TestDashboard_UnassignedUserRedirects(t *testing.T) {
	users := newStubUserService(&domain.User{ID: "u1", Email: "dev@example.com", Role: domain.RoleDeveloper})
	h := newPageHandler(users, &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/dashboard", "")
	c.Set("email", "dev@example.com")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 for user without assignments", rec.Code)
	}
}

func TestDashboard_AssignedUserPasses(t *testing.T) {
	users := newStubUserService(&domain.User{
		ID: "u1", Email: "dev@example.com", Role: domain.RoleDeveloper,
		AssignedClients: []string{"c1"},
	})
	clients := &stubClientService{clients: []*domain.Client{
		{ID: "c1", Name: "Acme", AssignedUserID: strPtr("u1")},
	}}
	h := newPageHandler(users, clients)
	c, rec := newTestContext(http.MethodGet, "/dashboard", "")
	c.Set("email", "dev@example.com")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestDashboard_L0AdminPassesWithoutAssignments(t *testing.T) {
	users := newStubUserService(&domain.User{ID: "u1", Email: "boss@example.com", Role: domain.RoleL0Admin})
	h := newPageHandler(users, &stubClientService{})
	c, rec := newTestContext(http.MethodGet, "/dashboard", "")
	c.Set("email", "boss@example.com")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for l0_admin", rec.Code)
	}
}
