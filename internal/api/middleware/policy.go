package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infilects/client-admin/internal/core/domain"
)

// Policy gates a route on one of the domain access predicates, e.g.
// Policy(domain.CanManageClients). The role claim must already have been
// injected by the Auth middleware.
func Policy(allow func(domain.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !allow(domain.Role(role)) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
