package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors enables sentinel comparisons

	"github.com/padelhq/padel-reservation/internal/model"
)

// CourtRepo provides methods to create and retrieve courts.  It embeds a
// database handle to perform queries and commands.  All timestamp fields
// are stored in UTC.
type CourtRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewCourtRepo constructs a CourtRepo with the given DB handle.
func NewCourtRepo(db *sql.DB) *CourtRepo { return &CourtRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *CourtRepo) DB() *sql.DB { return r.db }

const courtColumns = `id, name, type, location, capacity, duration_min, price_cents, is_active, created_at, updated_at`

func scanCourt(row interface{ Scan(...any) error }, c *model.Court) error {
	return row.Scan(&c.ID, &c.Name, &c.Type, &c.Location, &c.Capacity, &c.DurationMin, &c.PriceCents, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a new court.  Name, Type, Location, Capacity, DurationMin
// and PriceCents must be set.  After insert the record is read back so ID,
// IsActive and the timestamps are populated on the provided struct.
func (r *CourtRepo) Create(ctx context.Context, c *model.Court) error {
	const qInsert = `INSERT INTO courts (name, type, location, capacity, duration_min, price_cents)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, c.Name, c.Type, c.Location, c.Capacity, c.DurationMin, c.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const qSelect = `SELECT ` + courtColumns + ` FROM courts WHERE id = ?`
	return scanCourt(r.db.QueryRowContext(ctx, qSelect, c.ID), c)
}

// GetByID retrieves a court by its ID.  It returns ErrCourtNotFound when
// no row is found.
func (r *CourtRepo) GetByID(ctx context.Context, id uint64) (*model.Court, error) {
	const q = `SELECT ` + courtColumns + ` FROM courts WHERE id = ?`
	var c model.Court
	if err := scanCourt(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListActive returns all active courts ordered by name.  This is the
// court set rendered by the availability view.
func (r *CourtRepo) ListActive(ctx context.Context) ([]model.Court, error) {
	const q = `SELECT ` + courtColumns + ` FROM courts WHERE is_active = 1 ORDER BY name`
	return r.list(ctx, q)
}

// ListAll returns every court regardless of its active flag, ordered by
// name.  Used by admin tooling.
func (r *CourtRepo) ListAll(ctx context.Context) ([]model.Court, error) {
	const q = `SELECT ` + courtColumns + ` FROM courts ORDER BY name`
	return r.list(ctx, q)
}

func (r *CourtRepo) list(ctx context.Context, q string) ([]model.Court, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Court, 0)
	for rows.Next() {
		var c model.Court
		if err := scanCourt(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the mutable attributes of a court.  Returns
// ErrCourtNotFound when no row matches the ID.  The record is read back
// afterwards so the caller sees the stored state.
func (r *CourtRepo) Update(ctx context.Context, c *model.Court) error {
	const q = `UPDATE courts
	           SET name = ?, type = ?, location = ?, capacity = ?, duration_min = ?, price_cents = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Type, c.Location, c.Capacity, c.DurationMin, c.PriceCents, c.IsActive, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}
	const qSelect = `SELECT ` + courtColumns + ` FROM courts WHERE id = ?`
	return scanCourt(r.db.QueryRowContext(ctx, qSelect, c.ID), c)
}

// Deactivate hides a court from the availability view without deleting
// its booking history.  Returns ErrCourtNotFound when the court does not
// exist or is already inactive.
func (r *CourtRepo) Deactivate(ctx context.Context, id uint64) error {
	const q = `UPDATE courts SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND is_active = 1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}
	return nil
}
