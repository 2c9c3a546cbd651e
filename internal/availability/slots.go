// Package availability computes the per-court slot grid for one calendar
// day and classifies every slot as available, booked, blocked or past.  It
// is a pure transformation over caller-supplied snapshots: it performs no
// I/O, reads no clocks and keeps no state, so it may be invoked
// concurrently without coordination.  All calendar arithmetic happens in
// the location carried by the day parameter, which callers derive from the
// business timezone (Europe/Paris) regardless of where the viewer is.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/padelhq/padel-reservation/internal/model"
)

// Supported session durations in minutes.  Every court carries one of
// these as its slot grid step; anything else is a data-integrity fault.
const (
	DurationShort = 60
	DurationLong  = 90
)

// Status classifies one slot.  Exactly one status applies per slot, with
// precedence blocked > booked > past > available when intervals overlap.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusBlocked   Status = "blocked"
	StatusPast      Status = "past"
)

// ErrUnsupportedDuration is returned when a court carries a session
// duration other than 60 or 90 minutes.  This signals corrupt court data
// upstream, not a recoverable request error, so the whole computation is
// aborted rather than silently skipping the court.
var ErrUnsupportedDuration = errors.New("unsupported court duration")

// ErrInvalidHours is returned when the configured closing hour is not
// after the opening hour.  Like ErrUnsupportedDuration it indicates a
// configuration fault and aborts the computation.
var ErrInvalidHours = errors.New("closing hour must be after opening hour")

// Hours holds the club's global opening window as whole hours of the day.
// Slots start at Open:00 and never end later than Close:00.
type Hours struct {
	Open  int // first bookable hour, e.g. 9 for 09:00
	Close int // closing hour, e.g. 22 for 22:00
}

// Window returns the [open, close) instants of the business day that
// begins at day.  The day's location defines the calendar.
func (h Hours) Window(day time.Time) (time.Time, time.Time) {
	open := time.Date(day.Year(), day.Month(), day.Day(), h.Open, 0, 0, 0, day.Location())
	close := time.Date(day.Year(), day.Month(), day.Day(), h.Close, 0, 0, 0, day.Location())
	return open, close
}

// Slot is one fixed-duration candidate booking interval on one court.
// Slots are derived on every request and never persisted.  IsOwnBooking
// is only meaningful when Status is booked; it stays false otherwise and
// is omitted from JSON when false.
type Slot struct {
	CourtID      uint64    `json:"court_id"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Status       Status    `json:"status"`
	IsOwnBooking bool      `json:"is_own_booking,omitempty"`
}

// CourtWithSlots pairs a court with its ordered slot sequence for the
// requested day.
type CourtWithSlots struct {
	Court model.Court `json:"court"`
	Slots []Slot      `json:"slots"`
}

// AnonymousViewer is the viewer ID used when no authenticated user is
// present; no booking can ever be owned by it.
const AnonymousViewer uint64 = 0

// BuildCourtsWithSlots generates and classifies the slot grid of every
// court for one calendar day.
//
// Inputs follow the query contract: courts are the active courts in the
// order they should be rendered; bookings are the confirmed bookings whose
// start falls within the day; blocked are the blocking intervals for the
// day, each scoped to one court or (CourtID == nil) to all courts.  The
// day parameter is midnight of the requested day in the business
// timezone, and now is the reference instant computed once by the caller
// in the same timezone.  viewerID identifies the requesting user for own
// booking labelling; pass AnonymousViewer for guests.
//
// Per court the grid starts at hours.Open and steps by the court's
// duration while another full session still fits before hours.Close; a
// trailing remainder shorter than the duration yields no slot.  Overlap
// tests use half-open interval semantics, so a booking ending exactly at
// a slot's start does not touch that slot.  A slot whose start is at or
// before now is past (inclusive comparison).
func BuildCourtsWithSlots(courts []model.Court, bookings []model.Booking, blocked []model.BlockedSlot, day time.Time, now time.Time, viewerID uint64, hours Hours) ([]CourtWithSlots, error) {
	if hours.Close <= hours.Open {
		return nil, fmt.Errorf("%w: open=%d close=%d", ErrInvalidHours, hours.Open, hours.Close)
	}
	out := make([]CourtWithSlots, 0, len(courts))
	for _, court := range courts {
		if court.DurationMin != DurationShort && court.DurationMin != DurationLong {
			return nil, fmt.Errorf("%w: court %d has %d minutes", ErrUnsupportedDuration, court.ID, court.DurationMin)
		}
		step := time.Duration(court.DurationMin) * time.Minute
		open, close := hours.Window(day)

		slots := make([]Slot, 0, int(close.Sub(open)/step))
		for start := open; !start.Add(step).After(close); start = start.Add(step) {
			slots = append(slots, classify(court.ID, start, start.Add(step), bookings, blocked, now, viewerID))
		}
		out = append(out, CourtWithSlots{Court: court, Slots: slots})
	}
	return out, nil
}

// classify assigns the single status of one slot.  Blocking intervals win
// over bookings regardless of input order; among several overlapping
// bookings (which upstream constraints should prevent) the first in input
// order decides ownership.
func classify(courtID uint64, start, end time.Time, bookings []model.Booking, blocked []model.BlockedSlot, now time.Time, viewerID uint64) Slot {
	slot := Slot{CourtID: courtID, StartAt: start, EndAt: end}

	for _, bl := range blocked {
		if bl.CourtID != nil && *bl.CourtID != courtID {
			continue
		}
		if overlaps(start, end, bl.StartAt, bl.EndAt) {
			slot.Status = StatusBlocked
			return slot
		}
	}
	for _, b := range bookings {
		if b.CourtID != courtID {
			continue
		}
		if overlaps(start, end, b.StartAt, b.EndAt) {
			slot.Status = StatusBooked
			slot.IsOwnBooking = viewerID != AnonymousViewer && b.UserID == viewerID
			return slot
		}
	}
	if !start.After(now) {
		slot.Status = StatusPast
		return slot
	}
	slot.Status = StatusAvailable
	return slot
}

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DefaultDate picks the calendar day the availability view should open
// on: today while at least one session of minSessionMin minutes can still
// start strictly after now, otherwise tomorrow.  The returned time is
// midnight in now's location.
func DefaultDate(now time.Time, hours Hours, minSessionMin int) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	_, close := hours.Window(day)
	lastStart := close.Add(-time.Duration(minSessionMin) * time.Minute)
	if lastStart.After(now) {
		return day
	}
	return day.AddDate(0, 0, 1)
}
