package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/api/handler"
	"github.com/infilects/client-admin/internal/api/middleware"
	"github.com/infilects/client-admin/internal/core/domain"
)

// Deps carries everything the router needs to wire the HTTP surface.
type Deps struct {
	JWTSecret string
	Log       zerolog.Logger

	Auth    *handler.AuthHandler
	Clients *handler.ClientHandler
	Users   *handler.UserHandler
	Pages   *handler.PageHandler
	Health  *handler.HealthHandler
}

// NewRouter builds the Echo instance with all routes, middleware, and the
// central error handler registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("client_admin"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)

	e.POST("/auth/register", d.Auth.Register)
	e.POST("/auth/login", d.Auth.Login)

	// Page routes use the lenient session middleware so their gates can
	// redirect anonymous visitors instead of returning 401.
	pages := e.Group("", middleware.Session(d.JWTSecret))
	pages.GET("/admin", d.Pages.Admin)
	pages.GET("/dashboard", d.Pages.Dashboard)

	api := e.Group("/api", middleware.Auth(d.JWTSecret))
	api.GET("/clients", d.Clients.List, middleware.Policy(domain.CanViewClients))
	api.POST("/clients", d.Clients.Create, middleware.Policy(domain.CanManageClients))
	api.PUT("/clients/:id/assign", d.Clients.Assign, middleware.Policy(domain.CanManageClients))
	api.GET("/users", d.Users.List)
	api.PUT("/users/:id/role", d.Users.SetRole, middleware.Policy(domain.CanManageUsers))
	api.GET("/my-clients", d.Clients.MyClients)

	return e
}
