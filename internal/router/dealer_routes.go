package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/handler"
	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
	"github.com/kiasuhub/garang-guni-backend/internal/model"
)

// RegisterScrapDealers registers dealer-scoped endpoints under /v1.  All
// routes require a valid JWT and the SCRAP_DEALER role: dealers register
// their profile, publish and retract availability slots, and may remove
// their own profile.
func RegisterScrapDealers(e *echo.Echo, d *handler.ScrapDealerHandler, av *handler.AvailabilityHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleScrapDealer),
	)

	g.POST("/scrapdealers", d.Create)
	g.GET("/scrapdealers", d.List)
	g.GET("/scrapdealers/:id", d.Get)
	g.DELETE("/scrapdealers/:id", d.Delete)

	g.POST("/availability", av.Create)
	g.DELETE("/availability/:id", av.Delete)
}
