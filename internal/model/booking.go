package model

import "time"

// Booking lifecycle statuses.  Only CONFIRMED bookings occupy slots in the
// availability view; PENDING, CANCELLED and COMPLETED bookings do not.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// Booking records one user's reservation of one court session.  Start and
// end always align to the court's duration grid for confirmed bookings;
// the repository enforces that no two confirmed bookings for the same
// court overlap.
//
// Fields:
//  ID        – primary key identifier.
//  Reference – public booking reference (UUID) used in notifications.
//  CourtID   – the booked court.
//  UserID    – the user who owns the booking.
//  StartAt   – session start (UTC in storage).
//  EndAt     – session end (UTC in storage).
//  Status    – lifecycle state (PENDING, CONFIRMED, CANCELLED, COMPLETED).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    `json:"id"`         // bookings.id
	Reference string    `json:"reference"`  // bookings.reference
	CourtID   uint64    `json:"court_id"`   // bookings.court_id
	UserID    uint64    `json:"user_id"`    // bookings.user_id
	StartAt   time.Time `json:"start_at"`   // bookings.start_at
	EndAt     time.Time `json:"end_at"`     // bookings.end_at
	Status    string    `json:"status"`     // bookings.status
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
	UpdatedAt time.Time `json:"updated_at"` // bookings.updated_at
}
