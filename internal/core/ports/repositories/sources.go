package repositories

import (
	"context"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// The source interfaces wrap the external collaborator APIs that feed the
// reconciliation engine. Every collection is read-only from this side; the
// collaborators own the data. Implementations live in the upstream adapter.

// RoomSource lists the hotel's rooms.
type RoomSource interface {
	FetchRooms(ctx context.Context) ([]domain.PhysicalUnit, error)
}

// TableSource lists the restaurant's tables.
type TableSource interface {
	FetchTables(ctx context.Context) ([]domain.PhysicalUnit, error)
}

// BookingSource lists room bookings.
type BookingSource interface {
	FetchBookings(ctx context.Context) ([]domain.Booking, error)
}

// ReservationSource lists reservations not yet converted to bookings or
// orders.
type ReservationSource interface {
	FetchReservations(ctx context.Context) ([]domain.Reservation, error)
}

// OrderSource lists restaurant orders with their KOT item collections.
type OrderSource interface {
	FetchOrders(ctx context.Context) ([]domain.RestaurantOrder, error)
}

// CabSource lists cab bookings.
type CabSource interface {
	FetchCabBookings(ctx context.Context) ([]domain.CabBooking, error)
}

// SourceProvider bundles every upstream source needed to build a snapshot.
type SourceProvider interface {
	RoomSource
	TableSource
	BookingSource
	ReservationSource
	OrderSource
	CabSource
}
