package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func runMiddleware(mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, h(c)
}

func TestAuth_ValidTokenSetsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid":   "u1",
		"email": "alice@example.com",
		"role":  "manager",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := runMiddleware(Auth(testSecret), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := c.Get("email"); got != "alice@example.com" {
		t.Errorf("email claim = %v, want alice@example.com", got)
	}
	if got := c.Get("role"); got != "manager" {
		t.Errorf("role claim = %v, want manager", got)
	}
	if got := c.Get("uid"); got != "u1" {
		t.Errorf("uid claim = %v, want u1", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runMiddleware(Auth(testSecret), "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := runMiddleware(Auth(testSecret), "Basic abc123")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"uid": "u1", "exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := runMiddleware(Auth(testSecret), "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := runMiddleware(Auth(testSecret), "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	c, err := runMiddleware(Session(testSecret), "")
	if err != nil {
		t.Fatalf("expected anonymous pass-through, got %v", err)
	}
	if got := c.Get("email"); got != nil {
		t.Errorf("email claim = %v, want nil for anonymous session", got)
	}
}

func TestSession_ValidTokenSetsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid":   "u2",
		"email": "bob@example.com",
		"role":  "viewer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	c, err := runMiddleware(Session(testSecret), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := c.Get("email"); got != "bob@example.com" {
		t.Errorf("email claim = %v, want bob@example.com", got)
	}
}
