package model

import "time"

// BlockedSlot is an administrator-imposed unavailability interval.  When
// CourtID is nil the interval applies to every court.  A slot touched by a
// blocking interval is always rendered as blocked, even if a confirmed
// booking overlaps the same window.
//
// Fields:
//  ID        – primary key identifier.
//  CourtID   – targeted court; nil means all courts.
//  StartAt   – interval start (UTC in storage).
//  EndAt     – interval end (UTC in storage).
//  Reason    – optional free-text explanation shown to admins.
//  CreatedAt – creation timestamp.
type BlockedSlot struct {
	ID        uint64    `json:"id"`               // blocked_slots.id
	CourtID   *uint64   `json:"court_id"`         // blocked_slots.court_id (nullable)
	StartAt   time.Time `json:"start_at"`         // blocked_slots.start_at
	EndAt     time.Time `json:"end_at"`           // blocked_slots.end_at
	Reason    *string   `json:"reason,omitempty"` // blocked_slots.reason (nullable)
	CreatedAt time.Time `json:"created_at"`       // blocked_slots.created_at
}
