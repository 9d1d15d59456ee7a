package domain

import "time"

// SourceWarning records that one collaborator could not be fetched and an
// empty collection was substituted in its place. The snapshot stays usable;
// the warning lets the caller flag the degraded source.
type SourceWarning struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Snapshot is one consistent view of every upstream collection the
// reconciliation engine consumes. Snapshots are immutable once built; a
// refresh produces a new one.
type Snapshot struct {
	Rooms        []PhysicalUnit    `json:"rooms"`
	Tables       []PhysicalUnit    `json:"tables"`
	Bookings     []Booking         `json:"bookings"`
	Reservations []Reservation     `json:"reservations"`
	Orders       []RestaurantOrder `json:"orders"`
	CabBookings  []CabBooking      `json:"cabBookings"`
	Warnings     []SourceWarning   `json:"warnings,omitempty"`
	FetchedAt    time.Time         `json:"fetchedAt"`
	// Seq is the fetch sequence number, used for last-request-wins
	// arbitration between overlapping refreshes.
	Seq uint64 `json:"-"`
}

// Degraded reports whether any upstream source failed during the fetch.
func (s *Snapshot) Degraded() bool {
	return len(s.Warnings) > 0
}
