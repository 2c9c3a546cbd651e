package model

import "time"

// Court type and location enumerations.  Values are stored verbatim in the
// courts table and exposed unchanged over the API.
const (
	CourtTypeDouble = "DOUBLE" // full-size court for four players
	CourtTypeSingle = "SINGLE" // narrow court for two players
	CourtTypeKids   = "KIDS"   // reduced court for children's sessions

	CourtLocationIndoor  = "INDOOR"
	CourtLocationOutdoor = "OUTDOOR"
)

// Court describes a bookable padel court.  The session duration is fixed
// per court and drives the slot grid for that court: a 60-minute court
// tiles the business day in one-hour steps, a 90-minute court in
// ninety-minute steps.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human readable label, unique across the club.
//  Type        – court size (DOUBLE, SINGLE, KIDS).
//  Location    – INDOOR or OUTDOOR.
//  Capacity    – number of players (2 or 4).
//  DurationMin – session length in minutes (60 or 90).
//  PriceCents  – price of one session in cents.
//  IsActive    – inactive courts are hidden from the availability view.
//  CreatedAt   – timestamp when the record was created.
//  UpdatedAt   – timestamp when the record was last updated.
type Court struct {
	ID          uint64    `json:"id"`           // courts.id
	Name        string    `json:"name"`         // courts.name
	Type        string    `json:"type"`         // courts.type
	Location    string    `json:"location"`     // courts.location
	Capacity    uint8     `json:"capacity"`     // courts.capacity
	DurationMin int       `json:"duration_min"` // courts.duration_min
	PriceCents  uint32    `json:"price_cents"`  // courts.price_cents
	IsActive    bool      `json:"is_active"`    // courts.is_active
	CreatedAt   time.Time `json:"created_at"`   // courts.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // courts.updated_at
}
