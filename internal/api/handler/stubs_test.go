package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/core/domain"
	"github.com/infilects/client-admin/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// stubUserService is a canned-data ports.UserService for handler tests.
type stubUserService struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserService(users ...*domain.User) *stubUserService {
	s := &stubUserService{users: make(map[string]*domain.User)}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) SetRole(_ context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	for _, u := range s.users {
		if u.ID == userID {
			u.Role = role
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// stubClientService is a canned-data ports.ClientService for handler tests.
type stubClientService struct {
	clients []*domain.Client
}

func (s *stubClientService) Create(_ context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusProspect
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	cl := &domain.Client{
		ID:             "c" + input.Name,
		Name:           input.Name,
		Email:          input.Email,
		Company:        input.Company,
		Status:         status,
		AssignedUserID: input.AssignedUserID,
		Notes:          input.Notes,
	}
	s.clients = append(s.clients, cl)
	return cl, nil
}

func (s *stubClientService) List(context.Context) ([]*domain.Client, error) {
	return s.clients, nil
}

func (s *stubClientService) ListAssignedTo(_ context.Context, userID string) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, cl := range s.clients {
		if cl.AssignedUserID != nil && *cl.AssignedUserID == userID {
			out = append(out, cl)
		}
	}
	return out, nil
}

// stubReconcileQueue records enqueued client ids.
type stubReconcileQueue struct {
	enqueued []string
}

func (q *stubReconcileQueue) Enqueue(clientID string) {
	q.enqueued = append(q.enqueued, clientID)
}

// newTestContext builds an Echo context with the validator installed and an
// optional JSON body.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
