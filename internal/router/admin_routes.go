package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/handler"    // admin handlers
	"github.com/padelhq/padel-reservation/internal/middleware" // JWT + role middlewares
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, bs *handler.BlockedSlotHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Courts ----
	g.POST("/courts", a.CreateCourt)
	g.GET("/courts", a.ListCourts) // includes deactivated courts
	g.PUT("/courts/:id", a.UpdateCourt)
	g.PATCH("/courts/:id", a.UpdateCourt) // allow partial/semantic updates via PATCH as well
	g.DELETE("/courts/:id", a.DeleteCourt)

	// ---- Blocked slots ----
	g.POST("/blocked-slots", bs.CreateBlockedSlot)
	g.GET("/blocked-slots", bs.ListBlockedSlots)
	g.DELETE("/blocked-slots/:id", bs.DeleteBlockedSlot)
}
