package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/handler"
	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
)

// RegisterBookings registers the booking, item and image endpoints under /v1.
// All routes require a valid JWT; any authenticated role may book a
// collection, manage standalone items or upload images.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, i *handler.ItemHandler, im *handler.ImageHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(anyRole...),
	)

	g.POST("/bookings", b.Create)
	g.GET("/bookings/:id", b.Get)
	g.PUT("/bookings/:id", b.Update)
	g.DELETE("/bookings/:id", b.Delete)

	// Item management scoped to a booking: create-and-attach, attach an
	// existing item, and list the booking's items.
	g.POST("/bookings/:id/items", b.AddItem)
	g.PUT("/bookings/:id/items/:itemId", b.AttachItem)
	g.GET("/bookings/:id/items", b.ListItems)

	// Standalone items; not yet tied to a booking.
	g.POST("/items", i.Create)
	g.GET("/items", i.List)
	g.GET("/items/:id", i.Get)
	g.PUT("/items/:id", i.Update)
	g.DELETE("/items/:id", i.Delete)

	// Image uploads and retrieval.  GET /images looks up by the original
	// file name (?fileName=), GET /images/:id by the numeric id.
	g.POST("/images", im.Upload)
	g.GET("/images", im.GetByFileName)
	g.GET("/images/:id", im.Get)
	g.PUT("/images/:id", im.Update)
	g.DELETE("/images/:id", im.Delete)
}
