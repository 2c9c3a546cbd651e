package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/handler"    // booking handlers
	"github.com/padelhq/padel-reservation/internal/middleware" // JWT + role middlewares
)

// RegisterBookings registers player-facing booking endpoints under /v1.
// All routes require a valid JWT; both ADMIN and CUSTOMER roles may book.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "CUSTOMER"),
	)

	g.POST("/bookings", b.Create)
	g.GET("/bookings", b.ListMine)
	g.DELETE("/bookings/:id", b.Cancel)
}
