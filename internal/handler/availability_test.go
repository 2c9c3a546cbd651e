package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/padelhq/padel-reservation/internal/availability"
	"github.com/padelhq/padel-reservation/internal/config"
	"github.com/padelhq/padel-reservation/internal/handler"
	"github.com/padelhq/padel-reservation/internal/repository"
)

type availabilityResp struct {
	Date   string                        `json:"date"`
	Courts []availability.CourtWithSlots `json:"courts"`
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return config.Config{
		OpenHour:      9,
		CloseHour:     22,
		MinSessionMin: 60,
		Location:      loc,
	}
}

func newAvailabilityHandler(t *testing.T) (*handler.AvailabilityHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	h := handler.NewAvailabilityHandler(
		testConfig(t),
		repository.NewCourtRepo(db),
		repository.NewBookingRepo(db),
		repository.NewBlockedSlotRepo(db),
	)
	return h, mock, func() { db.Close() }
}

func TestGetAvailabilityLabelsOwnBooking(t *testing.T) {
	h, mock, closeDB := newAvailabilityHandler(t)
	defer closeDB()

	// Tomorrow keeps every slot ahead of the clock so statuses do not
	// depend on when the test runs.
	loc := h.Cfg.Location
	now := time.Now().In(loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	from := day.UTC()
	to := day.AddDate(0, 0, 1).UTC()

	created := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM courts WHERE is_active = 1 ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "location", "capacity", "duration_min", "price_cents", "is_active", "created_at", "updated_at"}).
			AddRow(1, "Center", "DOUBLE", "INDOOR", 4, 60, 3600, true, created, created))

	// One confirmed booking by the viewer in the 14:00 business-time slot.
	bookedStart := day.Add(14 * time.Hour).UTC()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE status = 'CONFIRMED' AND start_at >= \? AND start_at < \?`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "court_id", "user_id", "start_at", "end_at", "status", "created_at", "updated_at"}).
			AddRow(11, "ref-11", 1, 7, bookedStart, bookedStart.Add(time.Hour), "CONFIRMED", created, created))

	mock.ExpectQuery(`SELECT (.+) FROM blocked_slots WHERE start_at < \? AND end_at > \?`).
		WithArgs(to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "court_id", "start_at", "end_at", "reason", "created_at"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/availability?date="+day.Format("2006-01-02"), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "7")

	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp availabilityResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, day.Format("2006-01-02"), resp.Date)
	require.Len(t, resp.Courts, 1)
	require.Len(t, resp.Courts[0].Slots, 13) // 09:00 through 21:00 starts

	var booked, available int
	for _, s := range resp.Courts[0].Slots {
		switch s.Status {
		case availability.StatusBooked:
			booked++
			require.True(t, s.IsOwnBooking)
			require.True(t, s.StartAt.Equal(bookedStart))
		case availability.StatusAvailable:
			available++
			require.False(t, s.IsOwnBooking)
		}
	}
	require.Equal(t, 1, booked)
	require.Equal(t, 12, available)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityAnonymousViewer(t *testing.T) {
	h, mock, closeDB := newAvailabilityHandler(t)
	defer closeDB()

	loc := h.Cfg.Location
	now := time.Now().In(loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	from := day.UTC()
	to := day.AddDate(0, 0, 1).UTC()

	created := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM courts WHERE is_active = 1 ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "location", "capacity", "duration_min", "price_cents", "is_active", "created_at", "updated_at"}).
			AddRow(1, "Center", "DOUBLE", "INDOOR", 4, 60, 3600, true, created, created))

	bookedStart := day.Add(10 * time.Hour).UTC()
	mock.ExpectQuery(`SELECT (.+) FROM bookings`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "court_id", "user_id", "start_at", "end_at", "status", "created_at", "updated_at"}).
			AddRow(11, "ref-11", 1, 7, bookedStart, bookedStart.Add(time.Hour), "CONFIRMED", created, created))

	mock.ExpectQuery(`SELECT (.+) FROM blocked_slots`).
		WithArgs(to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "court_id", "start_at", "end_at", "reason", "created_at"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/availability?date="+day.Format("2006-01-02"), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// No user_id in context: guest view.

	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp availabilityResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, s := range resp.Courts[0].Slots {
		// Anonymous viewers see booked slots but never own them.
		require.False(t, s.IsOwnBooking)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityRejectsBadDate(t *testing.T) {
	h, _, closeDB := newAvailabilityHandler(t)
	defer closeDB()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/availability?date=14-03-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetAvailability(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
