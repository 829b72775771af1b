package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.AssignedClients = append([]string(nil), u.AssignedClients...)
	return &c
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) AddAssignedClient(_ context.Context, userID, clientID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for _, id := range u.AssignedClients {
		if id == clientID {
			return nil
		}
	}
	u.AssignedClients = append(u.AssignedClients, clientID)
	return nil
}

func (r *stubUserRepo) RemoveAssignedClient(_ context.Context, userID, clientID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.AssignedClients[:0]
	for _, id := range u.AssignedClients {
		if id != clientID {
			kept = append(kept, id)
		}
	}
	u.AssignedClients = kept
	return nil
}

func (r *stubUserRepo) ReleaseClient(_ context.Context, clientID string, exceptUserID *string) (int64, error) {
	var released int64
	for uid, u := range r.byID {
		if exceptUserID != nil && uid == *exceptUserID {
			continue
		}
		kept := u.AssignedClients[:0]
		removed := false
		for _, id := range u.AssignedClients {
			if id == clientID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		u.AssignedClients = kept
		if removed {
			released++
		}
	}
	return released, nil
}

type stubClientRepo struct {
	byID      map[string]*domain.Client
	seq       int
	createErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	cc := *c
	if c.AssignedUserID != nil {
		uid := *c.AssignedUserID
		cc.AssignedUserID = &uid
	}
	return &cc
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	c := cloneClient(client)
	c.ID = fmt.Sprintf("client-%d", r.seq)
	r.byID[c.ID] = c
	return cloneClient(c), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, cloneClient(c))
	}
	return out, nil
}

func (r *stubClientRepo) ListByAssignedUser(_ context.Context, userID string) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, c := range r.byID {
		if c.AssignedUserID != nil && *c.AssignedUserID == userID {
			out = append(out, cloneClient(c))
		}
	}
	return out, nil
}

func (r *stubClientRepo) SetAssignedUser(_ context.Context, clientID string, userID *string) (*domain.Client, error) {
	c, ok := r.byID[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	if userID != nil {
		uid := *userID
		c.AssignedUserID = &uid
	} else {
		c.AssignedUserID = nil
	}
	c.UpdatedAt = time.Now().UTC()
	return cloneClient(c), nil
}

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

func seedUser(r *stubUserRepo, email string, role domain.Role) *domain.User {
	now := time.Now().UTC()
	r.seq++
	u := &domain.User{
		ID:              fmt.Sprintf("user-%d", r.seq),
		Email:           email,
		Name:            email,
		Role:            role,
		AssignedClients: []string{},
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.byID[u.ID] = u
	return u
}

func seedClient(r *stubClientRepo, name string) *domain.Client {
	now := time.Now().UTC()
	r.seq++
	c := &domain.Client{
		ID:        fmt.Sprintf("client-%d", r.seq),
		Name:      name,
		Email:     name + "@example.com",
		Company:   name + " Inc",
		Status:    domain.StatusProspect,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byID[c.ID] = c
	return c
}

func strPtr(s string) *string { return &s }
