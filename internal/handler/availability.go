// Package handler exposes HTTP handlers for both authenticated and public
// endpoints.  This file defines the availability query: the endpoint that
// turns the day's courts, confirmed bookings and blocking intervals into
// the classified slot grid players browse before booking.
package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/availability"
	"github.com/padelhq/padel-reservation/internal/config"
	"github.com/padelhq/padel-reservation/internal/repository"
)

// AvailabilityHandler aggregates the repositories that feed the slot
// builder with one day's snapshots.  The handler reads everything the
// computation needs, derives "now" once in the business timezone, and
// delegates all classification to the availability package.
type AvailabilityHandler struct {
	Cfg          config.Config               // scheduling constants and business timezone
	CourtRepo    *repository.CourtRepo       // active courts ordered by name
	BookingRepo  *repository.BookingRepo     // confirmed bookings of the day
	BlockedRepo  *repository.BlockedSlotRepo // blocking intervals of the day
}

// NewAvailabilityHandler constructs a new AvailabilityHandler with the
// provided repositories.  All dependencies must be non-nil.
func NewAvailabilityHandler(cfg config.Config, courtRepo *repository.CourtRepo, bookingRepo *repository.BookingRepo, blockedRepo *repository.BlockedSlotRepo) *AvailabilityHandler {
	if courtRepo == nil || bookingRepo == nil || blockedRepo == nil {
		panic("nil repository passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Cfg: cfg, CourtRepo: courtRepo, BookingRepo: bookingRepo, BlockedRepo: blockedRepo}
}

// availabilityResp is the response envelope of the availability query.
type availabilityResp struct {
	Date   string                        `json:"date"`
	Courts []availability.CourtWithSlots `json:"courts"`
}

// GetAvailability handles GET /v1/availability?date=YYYY-MM-DD.  The date
// is interpreted in the business timezone; when absent, the view defaults
// to today unless no session can start today anymore, in which case it
// rolls to tomorrow.  Optional query parameters type, location and
// available=true re-filter the built view the same way the browse screen
// does client-side.  The viewer identity, when present, drives the
// is_own_booking labels; anonymous viewers see plain booked slots.
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	hours := availability.Hours{Open: h.Cfg.OpenHour, Close: h.Cfg.CloseHour}
	// "now" is derived exactly once per request, in the business timezone,
	// and passed down explicitly. Viewers in other timezones must not
	// shift the past/available boundary.
	now := time.Now().In(h.Cfg.Location)

	var day time.Time
	if raw := strings.TrimSpace(c.QueryParam("date")); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.Cfg.Location)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		}
		day = parsed
	} else {
		day = availability.DefaultDate(now, hours, h.Cfg.MinSessionMin)
	}

	ctx := c.Request().Context()
	courts, err := h.CourtRepo.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Day bounds in UTC for the storage layer.
	from := day.UTC()
	to := day.AddDate(0, 0, 1).UTC()
	bookings, err := h.BookingRepo.ListConfirmedBetween(ctx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	blocked, err := h.BlockedRepo.ListBetween(ctx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Anonymous viewers have no user_id in context; that is not an error
	// here, they simply own nothing.
	viewerID, _ := getUserID(c)

	view, err := availability.BuildCourtsWithSlots(courts, bookings, blocked, day, now, viewerID, hours)
	if err != nil {
		// Unsupported durations or inverted hours mean corrupt data, not a
		// bad request; log loudly and fail the whole call.
		log.Printf("availability: slot computation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability computation failed"})
	}

	opts := availability.FilterOptions{
		Type:          strings.ToUpper(strings.TrimSpace(c.QueryParam("type"))),
		Location:      strings.ToUpper(strings.TrimSpace(c.QueryParam("location"))),
		OnlyAvailable: c.QueryParam("available") == "true",
	}
	view = availability.Filter(view, opts)

	return c.JSON(http.StatusOK, availabilityResp{
		Date:   day.Format("2006-01-02"),
		Courts: view,
	})
}

// ListCourts handles GET /v1/courts.  It returns the active courts only,
// in the same name order the availability view uses, so guests can inspect
// the club before registering.
func (h *AvailabilityHandler) ListCourts(c echo.Context) error {
	courts, err := h.CourtRepo.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"courts": courts})
}
