package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/padelhq/padel-reservation/internal/model"
	"github.com/padelhq/padel-reservation/internal/repository"
)

var blockedCols = []string{"id", "court_id", "start_at", "end_at", "reason", "created_at"}

func TestBlockedSlotRepoListBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	created := time.Now().UTC()
	rows := sqlmock.NewRows(blockedCols).
		AddRow(1, nil, from.Add(14*time.Hour), from.Add(16*time.Hour), "club tournament", created).
		AddRow(2, 3, from.Add(18*time.Hour), from.Add(19*time.Hour), nil, created)
	mock.ExpectQuery(`SELECT (.+) FROM blocked_slots WHERE start_at < \? AND end_at > \?`).
		WithArgs(to, from).
		WillReturnRows(rows)

	r := repository.NewBlockedSlotRepo(db)
	blocked, err := r.ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, blocked, 2)

	// Global interval: NULL court_id scans to nil, reason is populated.
	require.Nil(t, blocked[0].CourtID)
	require.NotNil(t, blocked[0].Reason)
	require.Equal(t, "club tournament", *blocked[0].Reason)

	// Court-scoped interval: court_id set, reason absent.
	require.NotNil(t, blocked[1].CourtID)
	require.Equal(t, uint64(3), *blocked[1].CourtID)
	require.Nil(t, blocked[1].Reason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockedSlotRepoCreateGlobal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	reason := "maintenance"

	mock.ExpectExec(`INSERT INTO blocked_slots`).
		WithArgs(nil, start, end, &reason).
		WillReturnResult(sqlmock.NewResult(6, 1))
	mock.ExpectQuery(`SELECT (.+) FROM blocked_slots WHERE id = \?`).
		WithArgs(uint64(6)).
		WillReturnRows(sqlmock.NewRows(blockedCols).AddRow(6, nil, start, end, reason, time.Now().UTC()))

	r := repository.NewBlockedSlotRepo(db)
	bs := &model.BlockedSlot{StartAt: start, EndAt: end, Reason: &reason}
	require.NoError(t, r.Create(context.Background(), bs))
	require.Equal(t, uint64(6), bs.ID)
	require.Nil(t, bs.CourtID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockedSlotRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM blocked_slots WHERE id = \?`).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := repository.NewBlockedSlotRepo(db)
	require.ErrorIs(t, r.Delete(context.Background(), 99), repository.ErrBlockedSlotNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
