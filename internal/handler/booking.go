package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/availability"
	"github.com/padelhq/padel-reservation/internal/config"
	"github.com/padelhq/padel-reservation/internal/model"
	"github.com/padelhq/padel-reservation/internal/queue"
	"github.com/padelhq/padel-reservation/internal/repository"
	queue_publisher "github.com/padelhq/padel-reservation/internal/service"
)

// BookingHandler groups the repositories required to create, cancel and
// list bookings on behalf of players.  All methods assume that JWT
// authentication and role validation has already been performed by
// middleware.  Creation runs its availability checks inside a repository
// transaction so two players racing for the same window serialize there.
type BookingHandler struct {
	Cfg         config.Config
	CourtRepo   *repository.CourtRepo
	BookingRepo *repository.BookingRepo
}

// NewBookingHandler constructs a new BookingHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewBookingHandler(cfg config.Config, courtRepo *repository.CourtRepo, bookingRepo *repository.BookingRepo) *BookingHandler {
	if courtRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Cfg: cfg, CourtRepo: courtRepo, BookingRepo: bookingRepo}
}

// createBookingReq is the JSON body of POST /v1/bookings.  StartAt is an
// RFC 3339 timestamp; the end is derived from the court's duration.
type createBookingReq struct {
	CourtID uint64    `json:"court_id"`
	StartAt time.Time `json:"start_at"`
}

// Create handles POST /v1/bookings.  The requested start must land on the
// court's slot grid for its day (opening hour plus a whole number of
// sessions), lie strictly in the future, and fit before closing.  The
// repository then enforces, transactionally, that the window is neither
// booked nor blocked.  On success a 201 with the stored booking is
// returned and a booking.confirmed event is published; publish failures
// are logged and ignored so the booking flow never depends on the broker.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.CourtID == 0 || req.StartAt.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "court_id and start_at are required"})
	}

	ctx := c.Request().Context()
	court, err := h.CourtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !court.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
	}

	now := time.Now().In(h.Cfg.Location)
	start := req.StartAt.In(h.Cfg.Location)
	end := start.Add(time.Duration(court.DurationMin) * time.Minute)

	hours := availability.Hours{Open: h.Cfg.OpenHour, Close: h.Cfg.CloseHour}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, h.Cfg.Location)
	open, close := hours.Window(day)

	// Grid alignment: start at or after opening, offset a whole number of
	// sessions, end at or before closing.
	offset := start.Sub(open)
	step := time.Duration(court.DurationMin) * time.Minute
	if offset < 0 || offset%step != 0 || end.After(close) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_at is not on the court's slot grid"})
	}
	// A slot whose start is at or before now is already past.
	if !start.After(now) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot is in the past"})
	}

	booking := &model.Booking{
		CourtID: court.ID,
		UserID:  userID,
		StartAt: start.UTC(),
		EndAt:   end.UTC(),
	}
	if err := h.BookingRepo.CreateConfirmed(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	event := queue.BookingConfirmedEvent{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		UserID:      booking.UserID,
		CourtID:     court.ID,
		CourtName:   court.Name,
		StartsAt:    booking.StartAt.Format(time.RFC3339),
		EndsAt:      booking.EndAt.Format(time.RFC3339),
		PriceCents:  court.PriceCents,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingConfirmed(context.Background(), event) }()

	return c.JSON(http.StatusCreated, booking)
}

// Cancel handles DELETE /v1/bookings/:id.  Players may cancel their own
// confirmed bookings while the session has not started yet.  Cancelling
// frees the slot for other players on the next availability computation
// and publishes a booking.cancelled event.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	now := time.Now().In(h.Cfg.Location)
	booking, err := h.BookingRepo.CancelForUser(c.Request().Context(), id, userID, now.UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking cannot be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not cancel booking"})
	}

	event := queue.BookingCancelledEvent{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		UserID:      booking.UserID,
		CourtID:     booking.CourtID,
		StartsAt:    booking.StartAt.Format(time.RFC3339),
		EndsAt:      booking.EndAt.Format(time.RFC3339),
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingCancelled(context.Background(), event) }()

	return c.JSON(http.StatusOK, booking)
}

// ListMine handles GET /v1/bookings and returns the caller's bookings,
// newest first, across all statuses.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.BookingRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}
