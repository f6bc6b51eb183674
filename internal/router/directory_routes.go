package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/handler"
	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
)

// RegisterDirectory registers the location, availability-search and contact
// endpoints under /v1.  All routes require a valid JWT for any role.  The
// optional extra middlewares (typically the Redis response cache) are applied
// to the location and availability group, where repeated GETs dominate.
func RegisterDirectory(e *echo.Echo, l *handler.LocationHandler, av *handler.AvailabilityHandler, ct *handler.ContactHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(anyRole...),
	}

	g := e.Group("/v1", append(mws, extra...)...)

	g.POST("/locations", l.Create)
	g.GET("/locations", l.List)
	g.GET("/locations/:id", l.Get)
	g.PUT("/locations/:id", l.Update)
	g.DELETE("/locations/:id", l.Delete)

	// Customers search published collection slots by date and/or location.
	g.GET("/availability/search", av.Search)

	c := e.Group("/v1", mws...)
	c.POST("/contacts", ct.Create)
	c.GET("/contacts", ct.List)
}
