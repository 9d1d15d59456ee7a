package domain

import (
	"strings"
	"time"
)

// ActivityRecord is a time-bounded claim on at most one physical unit.
// Every concrete record kind (booking, reservation, restaurant order, cab
// booking) exposes its identity fields through this interface so the matcher
// and status resolver can treat them uniformly.
type ActivityRecord interface {
	// RecordID identifies the record for logging and tie-break diagnostics.
	RecordID() string
	// Active reports whether the record currently counts towards occupancy.
	// The active-status set varies by record kind.
	Active(now time.Time) bool
	// DirectRef is the record's bare scalar unit reference, if any.
	DirectRef() FlexID
	// AssignedRef is the record's polymorphic unit reference, if any.
	AssignedRef() RoomRef
	// StartedAt is the record's creation time, used for elapsed tracking.
	StartedAt() time.Time
}

// statusIn does a case-insensitive membership test. Upstream services are not
// consistent about casing ("Confirmed" vs "confirmed").
func statusIn(status string, set ...string) bool {
	for _, s := range set {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}

// Booking is a room booking held by a guest.
type Booking struct {
	BookingID    string    `json:"bookingId"`
	GRCNumber    string    `json:"grcNumber"`
	GuestName    string    `json:"guestName"`
	VIP          bool      `json:"vip"`
	Status       string    `json:"status"`
	RoomNumber   FlexID    `json:"roomNumber"`
	RoomAssigned RoomRef   `json:"roomAssigned"`
	CheckIn      time.Time `json:"checkInDate"`
	CheckOut     time.Time `json:"checkOutDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (b Booking) RecordID() string { return b.BookingID }

// Active: a booking occupies its room while its status is one of the
// confirmed states and its checkout date is today or in the future.
func (b Booking) Active(now time.Time) bool {
	if !statusIn(b.Status, "Confirmed", "Booked", "Reserved") {
		return false
	}
	if b.CheckOut.IsZero() {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !b.CheckOut.Before(today)
}

func (b Booking) DirectRef() FlexID    { return b.RoomNumber }
func (b Booking) AssignedRef() RoomRef { return b.RoomAssigned }
func (b Booking) StartedAt() time.Time { return b.CreatedAt }

// Reservation is a forward hold on a table or room that has not yet been
// converted into a booking or an order.
type Reservation struct {
	ReservationID string    `json:"reservationId"`
	GRCNumber     string    `json:"grcNumber"`
	GuestName     string    `json:"guestName"`
	VIP           bool      `json:"vip"`
	Status        string    `json:"status"`
	UnitNumber    FlexID    `json:"roomNumber"`
	UnitAssigned  RoomRef   `json:"roomAssigned"`
	ReservedFor   time.Time `json:"reservedFor"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r Reservation) RecordID() string { return r.ReservationID }

func (r Reservation) Active(now time.Time) bool {
	return statusIn(r.Status, "Confirmed", "Booked", "Reserved")
}

func (r Reservation) DirectRef() FlexID    { return r.UnitNumber }
func (r Reservation) AssignedRef() RoomRef { return r.UnitAssigned }
func (r Reservation) StartedAt() time.Time { return r.CreatedAt }

// RestaurantOrder is a dine-in (or room-service) order with its line items.
// Items may arrive under allKotItems or items depending on which backend
// endpoint produced the record; ItemList applies the fallback.
type RestaurantOrder struct {
	OrderID       string     `json:"orderId"`
	OrderType     string     `json:"orderType"`
	Status        string     `json:"status"`
	GuestName     string     `json:"guestName"`
	TableNumber   FlexID     `json:"tableNumber"`
	TableAssigned RoomRef    `json:"tableAssigned"`
	AllKOTItems   []LineItem `json:"allKotItems"`
	Items         []LineItem `json:"items"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (o RestaurantOrder) RecordID() string { return o.OrderID }

// Active: an order holds its table until it reaches a terminal state.
func (o RestaurantOrder) Active(now time.Time) bool {
	return !statusIn(o.Status, "completed", "cancelled", "paid")
}

func (o RestaurantOrder) DirectRef() FlexID    { return o.TableNumber }
func (o RestaurantOrder) AssignedRef() RoomRef { return o.TableAssigned }
func (o RestaurantOrder) StartedAt() time.Time { return o.CreatedAt }

// ItemList selects the order's item collection: allKotItems when the field is
// present, otherwise items, otherwise nothing. Presence wins over length so
// an explicitly empty allKotItems does not fall through to a stale items
// field.
func (o RestaurantOrder) ItemList() []LineItem {
	if o.AllKOTItems != nil {
		return o.AllKOTItems
	}
	if o.Items != nil {
		return o.Items
	}
	return nil
}

// IsReservationType reports whether the order merely reserves its table
// rather than occupying it, which flips the derived table status from booked
// to reserved.
func (o RestaurantOrder) IsReservationType() bool {
	return statusIn(o.OrderType, "Reserved", "Reservation")
}

// CabBooking associates a guest (and usually a room) with a pending pickup.
type CabBooking struct {
	CabBookingID string    `json:"cabBookingId"`
	GuestName    string    `json:"guestName"`
	RoomNumber   FlexID    `json:"roomNumber"`
	RoomAssigned RoomRef   `json:"roomAssigned"`
	PickupTime   time.Time `json:"pickupTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c CabBooking) RecordID() string { return c.CabBookingID }

func (c CabBooking) Active(now time.Time) bool {
	return !statusIn(c.Status, "completed", "cancelled")
}

func (c CabBooking) DirectRef() FlexID    { return c.RoomNumber }
func (c CabBooking) AssignedRef() RoomRef { return c.RoomAssigned }
func (c CabBooking) StartedAt() time.Time { return c.CreatedAt }
