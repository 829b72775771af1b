package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session claims injected by the Auth middleware and
// fast-fails before any service call: a missing email means the middleware
// did not run or the token carried no identity.
func ctxSession(c echo.Context) (email, role string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return email, role, nil
}

// sessionEmail is the lenient variant used by page gates: it reports whether
// an authenticated session is present instead of erroring.
func sessionEmail(c echo.Context) (string, bool) {
	email, _ := c.Get("email").(string)
	return email, email != ""
}
