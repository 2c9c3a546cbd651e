package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/padelhq/padel-reservation/internal/model"
)

// BookingRepo provides CRUD operations for court bookings.  Booking rows
// are the single source of truth for slot occupancy: the availability
// view reads confirmed bookings as a snapshot, and CreateConfirmed
// serializes inserts so that no two confirmed bookings for the same court
// ever overlap and no confirmed booking lands inside a blocked interval.
// All timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, reference, court_id, user_id, start_at, end_at, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.CourtID, &b.UserID, &b.StartAt, &b.EndAt, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

// ListConfirmedBetween returns the confirmed bookings whose start falls
// within [from, to), projected for the availability view and ordered by
// court and start time.  Callers pass the UTC bounds of one business day.
func (r *BookingRepo) ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + `
	           FROM bookings
	           WHERE status = 'CONFIRMED' AND start_at >= ? AND start_at < ?
	           ORDER BY court_id, start_at`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConfirmed inserts a confirmed booking after verifying, inside a
// single transaction, that the requested window neither overlaps another
// confirmed booking on the same court nor any applicable blocking
// interval.  The overlap probes run FOR UPDATE so concurrent attempts on
// the same window serialize on the row locks; the persistence layer is
// where at-most-one-writer-wins is enforced, not in the availability
// computation.  A new public reference is generated when the booking has
// none.  Returns ErrSlotUnavailable when the window is taken.
func (r *BookingRepo) CreateConfirmed(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Half-open overlap probe: existing.start < new.end AND existing.end > new.start.
	const qBooked = `SELECT id FROM bookings
	                 WHERE court_id = ? AND status = 'CONFIRMED' AND start_at < ? AND end_at > ?
	                 LIMIT 1 FOR UPDATE`
	var clash uint64
	err = tx.QueryRowContext(ctx, qBooked, b.CourtID, b.EndAt, b.StartAt).Scan(&clash)
	if err == nil {
		return ErrSlotUnavailable
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	const qBlocked = `SELECT id FROM blocked_slots
	                  WHERE (court_id IS NULL OR court_id = ?) AND start_at < ? AND end_at > ?
	                  LIMIT 1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, qBlocked, b.CourtID, b.EndAt, b.StartAt).Scan(&clash)
	if err == nil {
		return ErrSlotUnavailable
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	const qInsert = `INSERT INTO bookings (reference, court_id, user_id, start_at, end_at, status)
	                 VALUES (?, ?, ?, ?, ?, 'CONFIRMED')`
	res, err := tx.ExecContext(ctx, qInsert, b.Reference, b.CourtID, b.UserID, b.StartAt, b.EndAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	// Read the row back to populate timestamps and defaults.
	const qSelect = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	if err := scanBooking(tx.QueryRowContext(ctx, qSelect, b.ID), b); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID retrieves a booking by its ID.  It returns ErrBookingNotFound
// when no row is found.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	var b model.Booking
	if err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// CancelForUser marks a confirmed booking as cancelled on behalf of its
// owner.  It returns ErrBookingNotFound when the booking does not exist,
// ErrForbidden when it belongs to a different user, and ErrConflict when
// it is not in CONFIRMED state or its session already started at the
// provided reference instant.  The cancelled booking is returned so the
// caller can publish the cancellation event.
func (r *BookingRepo) CancelForUser(ctx context.Context, id, userID uint64, now time.Time) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const qSelect = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`
	var b model.Booking
	if err := scanBooking(tx.QueryRowContext(ctx, qSelect, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status != model.BookingStatusConfirmed || !b.StartAt.After(now) {
		return nil, ErrConflict
	}

	const qUpdate = `UPDATE bookings SET status = 'CANCELLED', updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := tx.ExecContext(ctx, qUpdate, b.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	b.Status = model.BookingStatusCancelled
	return &b, nil
}

// ListByUser returns all bookings of one user, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? ORDER BY start_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
