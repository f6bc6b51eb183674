package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/handler"
	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// anyRole lists every role accepted on the general /v1 group.  Role-specific
// groups (scrap dealers, admin) narrow this down in their own files.
var anyRole = []model.Role{model.RoleCustomer, model.RoleScrapDealer, model.RoleAdmin}

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers or monitoring systems to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints and the
// account endpoints that require an existing session.
//
// Unauthenticated operations live under /auth: signup, login, refresh and
// logout all work on tokens rather than sessions, so no JWT middleware is
// applied.  Logout takes the refresh token in the request body and revokes
// it; a missing or unknown token yields 401.
//
// The account endpoints (/v1/me) require a valid access token for any role,
// and the user listing under /v1/admin additionally requires ADMIN.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	me := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(anyRole...),
	)
	me.GET("/me", u.Me)
	me.PUT("/me", u.UpdateProfile)

	admin := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.GET("/users", u.ListUsers)
}
