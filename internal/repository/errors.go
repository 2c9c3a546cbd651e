// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to act on a booking owned by someone else, while
// ErrSlotUnavailable signals that a booking cannot be created because
// the requested window is already taken or blocked.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because of
// conflicting state, such as cancelling a booking that has already
// started or was already cancelled. Handlers should translate this into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrSlotUnavailable is returned when a booking insert loses the race
// for a court window: an overlapping confirmed booking or blocking
// interval already occupies it. Handlers should translate this into an
// HTTP 409 response.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrCourtNotFound is returned when a court lookup fails.
var ErrCourtNotFound = errors.New("court not found")

// ErrBookingNotFound is returned when a booking lookup fails.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBlockedSlotNotFound is returned when a blocked interval lookup fails.
var ErrBlockedSlotNotFound = errors.New("blocked slot not found")
