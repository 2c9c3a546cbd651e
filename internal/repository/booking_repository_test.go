package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/padelhq/padel-reservation/internal/model"
	"github.com/padelhq/padel-reservation/internal/repository"
)

var bookingCols = []string{"id", "reference", "court_id", "user_id", "start_at", "end_at", "status", "created_at", "updated_at"}

func TestBookingRepoListConfirmedBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	created := time.Now().UTC()
	rows := sqlmock.NewRows(bookingCols).
		AddRow(1, "ref-a", 1, 7, from.Add(10*time.Hour), from.Add(11*time.Hour), "CONFIRMED", created, created).
		AddRow(2, "ref-b", 2, 8, from.Add(12*time.Hour), from.Add(13*time.Hour+30*time.Minute), "CONFIRMED", created, created)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE status = 'CONFIRMED' AND start_at >= \? AND start_at < \?`).
		WithArgs(from, to).
		WillReturnRows(rows)

	r := repository.NewBookingRepo(db)
	bookings, err := r.ListConfirmedBetween(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.Equal(t, uint64(7), bookings[0].UserID)
	require.Equal(t, "CONFIRMED", bookings[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCreateConfirmedSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM bookings`).
		WithArgs(uint64(1), end, start).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT id FROM blocked_slots`).
		WithArgs(uint64(1), end, start).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(11, 1))
	created := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \?`).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(11, "gen-ref", 1, 7, start, end, "CONFIRMED", created, created))
	mock.ExpectCommit()

	r := repository.NewBookingRepo(db)
	b := &model.Booking{CourtID: 1, UserID: 7, StartAt: start, EndAt: end}
	require.NoError(t, r.CreateConfirmed(context.Background(), b))
	require.Equal(t, uint64(11), b.ID)
	require.NotEmpty(t, b.Reference)
	require.Equal(t, model.BookingStatusConfirmed, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCreateConfirmedOverlapLosesRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM bookings`).
		WithArgs(uint64(1), end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectRollback()

	r := repository.NewBookingRepo(db)
	b := &model.Booking{CourtID: 1, UserID: 7, StartAt: start, EndAt: end}
	require.ErrorIs(t, r.CreateConfirmed(context.Background(), b), repository.ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCreateConfirmedBlockedWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM bookings`).
		WithArgs(uint64(2), end, start).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT id FROM blocked_slots`).
		WithArgs(uint64(2), end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectRollback()

	r := repository.NewBookingRepo(db)
	b := &model.Booking{CourtID: 2, UserID: 7, StartAt: start, EndAt: end}
	require.ErrorIs(t, r.CreateConfirmed(context.Background(), b), repository.ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCancelForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	start := now.Add(3 * time.Hour)
	created := now.Add(-24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \? FOR UPDATE`).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(11, "ref", 1, 7, start, start.Add(time.Hour), "CONFIRMED", created, created))
	mock.ExpectExec(`UPDATE bookings SET status = 'CANCELLED'`).
		WithArgs(uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := repository.NewBookingRepo(db)
	b, err := r.CancelForUser(context.Background(), 11, 7, now)
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusCancelled, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCancelForUserWrongOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	start := now.Add(3 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \? FOR UPDATE`).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(11, "ref", 1, 7, start, start.Add(time.Hour), "CONFIRMED", now, now))
	mock.ExpectRollback()

	r := repository.NewBookingRepo(db)
	_, err = r.CancelForUser(context.Background(), 11, 8, now)
	require.ErrorIs(t, err, repository.ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCancelForUserAlreadyStarted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \? FOR UPDATE`).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(11, "ref", 1, 7, start, start.Add(time.Hour), "CONFIRMED", now, now))
	mock.ExpectRollback()

	r := repository.NewBookingRepo(db)
	_, err = r.CancelForUser(context.Background(), 11, 7, now)
	require.ErrorIs(t, err, repository.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
