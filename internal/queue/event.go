// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a court booking is successfully
// confirmed.  It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Reference   string `json:"reference"`
	UserID      uint64 `json:"user_id"`
	CourtID     uint64 `json:"court_id"`
	CourtName   string `json:"court_name"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	PriceCents  uint32 `json:"price_cents"`
	ConfirmedAt string `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a player cancels a confirmed
// booking, freeing the slot for the next availability computation.
type BookingCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Reference   string `json:"reference"`
	UserID      uint64 `json:"user_id"`
	CourtID     uint64 `json:"court_id"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	CancelledAt string `json:"cancelled_at"`
}
