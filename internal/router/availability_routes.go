package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/handler"    // availability handler
	"github.com/padelhq/padel-reservation/internal/middleware" // optional JWT middleware
)

// RegisterAvailability registers the public availability endpoint under /v1.
// The route is readable by guests, but a valid bearer token upgrades the
// response with is_own_booking labels, so OptionalJWTAuth runs first to
// resolve the viewer identity when one is presented.  The cache middleware
// is built by the caller because it needs the Redis client; pass nil
// middlewares to register the route without caching (tests do this).
func RegisterAvailability(e *echo.Echo, a *handler.AvailabilityHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mws := append([]echo.MiddlewareFunc{middleware.OptionalJWTAuth(jwtSecret)}, extra...)
	e.GET("/v1/availability", a.GetAvailability, mws...)

	// Courts are browsable without authentication so guests can inspect the
	// club before registering.
	e.GET("/v1/courts", a.ListCourts)
}
