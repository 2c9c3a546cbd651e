package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/padelhq/padel-reservation/internal/model"
)

// BlockedSlotRepo manages administrator-imposed unavailability intervals.
// An interval with a NULL court_id applies to every court.  All
// timestamp fields are stored in UTC.
type BlockedSlotRepo struct {
	db *sql.DB
}

// NewBlockedSlotRepo returns a new BlockedSlotRepo bound to the given database.
func NewBlockedSlotRepo(db *sql.DB) *BlockedSlotRepo { return &BlockedSlotRepo{db: db} }

// Create inserts a blocking interval.  CourtID may be nil to block all
// courts at once.  After insert the record is read back to populate the
// generated ID and creation timestamp.
func (r *BlockedSlotRepo) Create(ctx context.Context, bs *model.BlockedSlot) error {
	const qInsert = `INSERT INTO blocked_slots (court_id, start_at, end_at, reason) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, bs.CourtID, bs.StartAt, bs.EndAt, bs.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	bs.ID = uint64(id)

	const qSelect = `SELECT id, court_id, start_at, end_at, reason, created_at FROM blocked_slots WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, bs.ID).
		Scan(&bs.ID, &bs.CourtID, &bs.StartAt, &bs.EndAt, &bs.Reason, &bs.CreatedAt)
}

// ListBetween returns the blocking intervals that overlap [from, to),
// both court-specific and global, ordered by start time.  Overlap rather
// than containment matters here: a multi-day maintenance window opened
// last week must still blank out today's grid.
func (r *BlockedSlotRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.BlockedSlot, error) {
	const q = `SELECT id, court_id, start_at, end_at, reason, created_at
	           FROM blocked_slots
	           WHERE start_at < ? AND end_at > ?
	           ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, q, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.BlockedSlot, 0)
	for rows.Next() {
		var bs model.BlockedSlot
		if err := rows.Scan(&bs.ID, &bs.CourtID, &bs.StartAt, &bs.EndAt, &bs.Reason, &bs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a blocking interval.  Returns ErrBlockedSlotNotFound
// when no row matches the ID.
func (r *BlockedSlotRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM blocked_slots WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBlockedSlotNotFound
	}
	return nil
}
