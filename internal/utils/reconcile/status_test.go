package reconcile_test

import (
	"testing"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/hotelops/frontdesk_backend/internal/utils/reconcile"
	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	room5 := domain.PhysicalUnit{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom, Status: "available"}
	table1 := domain.PhysicalUnit{ID: domain.NewFlexID("T1"), Kind: domain.UnitTable, Status: "available"}

	activeBooking := domain.Booking{
		BookingID:    "b1",
		Status:       "Confirmed",
		RoomAssigned: domain.EmbeddedRef(domain.NewFlexID("5")),
		CheckOut:     tomorrow,
		CreatedAt:    now.Add(-time.Hour),
	}

	tests := []struct {
		name       string
		unit       domain.PhysicalUnit
		candidates []domain.ActivityRecord
		want       domain.UnitStatus
	}{
		{
			name:       "room with no matches is available",
			unit:       room5,
			candidates: nil,
			want:       domain.StatusAvailable,
		},
		{
			name:       "room with active booking is occupied",
			unit:       room5,
			candidates: []domain.ActivityRecord{activeBooking},
			want:       domain.StatusOccupied,
		},
		{
			name:       "maintenance always wins over active matches",
			unit:       domain.PhysicalUnit{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom, Status: "maintenance"},
			candidates: []domain.ActivityRecord{activeBooking},
			want:       domain.StatusMaintenance,
		},
		{
			name:       "unknown unit status reads as available",
			unit:       domain.PhysicalUnit{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom, Status: "???"},
			candidates: nil,
			want:       domain.StatusAvailable,
		},
		{
			name: "table with dine-in order is booked",
			unit: table1,
			candidates: []domain.ActivityRecord{
				domain.RestaurantOrder{OrderID: "o1", OrderType: "Dine-in", Status: "pending", TableNumber: domain.NewFlexID("T1")},
			},
			want: domain.StatusBooked,
		},
		{
			name: "table with reservation-type order is reserved",
			unit: table1,
			candidates: []domain.ActivityRecord{
				domain.RestaurantOrder{OrderID: "o2", OrderType: "Reserved", Status: "pending", TableNumber: domain.NewFlexID("T1")},
			},
			want: domain.StatusReserved,
		},
		{
			name: "table with reservation record is reserved",
			unit: table1,
			candidates: []domain.ActivityRecord{
				domain.Reservation{ReservationID: "r1", Status: "Confirmed", UnitNumber: domain.NewFlexID("T1")},
			},
			want: domain.StatusReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.ResolveStatus(tt.unit, tt.candidates))
		})
	}
}

func TestResolveStatus_IsPure(t *testing.T) {
	now := time.Now()
	unit := domain.PhysicalUnit{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom}
	candidates := []domain.ActivityRecord{
		domain.Booking{BookingID: "b1", Status: "Confirmed", RoomNumber: domain.NewFlexID("5"), CheckOut: now.Add(time.Hour)},
	}

	first := reconcile.ResolveStatus(unit, candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, reconcile.ResolveStatus(unit, candidates), "identical inputs must yield identical status")
	}
}

func TestDisplayDetails_FirstMatchWins(t *testing.T) {
	first := domain.Booking{BookingID: "b1", GuestName: "Asha Rao", VIP: true, GRCNumber: "GRC-17", Status: "Confirmed"}
	second := domain.Booking{BookingID: "b2", GuestName: "Someone Else", Status: "Confirmed"}

	name, vip, grc := reconcile.DisplayDetails([]domain.ActivityRecord{first, second})
	assert.Equal(t, "Asha Rao", name)
	assert.True(t, vip)
	assert.Equal(t, "GRC-17", grc)

	name, vip, grc = reconcile.DisplayDetails(nil)
	assert.Empty(t, name)
	assert.False(t, vip)
	assert.Empty(t, grc)
}

func TestBookingActive_CheckoutRule(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking domain.Booking
		want    bool
	}{
		{
			name:    "confirmed with checkout tomorrow",
			booking: domain.Booking{Status: "Confirmed", CheckOut: now.Add(24 * time.Hour)},
			want:    true,
		},
		{
			name:    "confirmed with checkout earlier today still active",
			booking: domain.Booking{Status: "Confirmed", CheckOut: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
			want:    true,
		},
		{
			name:    "confirmed but checked out yesterday",
			booking: domain.Booking{Status: "Confirmed", CheckOut: now.Add(-24 * time.Hour)},
			want:    false,
		},
		{
			name:    "cancelled with future checkout",
			booking: domain.Booking{Status: "Cancelled", CheckOut: now.Add(24 * time.Hour)},
			want:    false,
		},
		{
			name:    "missing checkout date",
			booking: domain.Booking{Status: "Confirmed"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.Active(now))
		})
	}
}

func TestOrderActive_TerminalStatuses(t *testing.T) {
	now := time.Now()
	assert.True(t, domain.RestaurantOrder{Status: "pending"}.Active(now))
	assert.True(t, domain.RestaurantOrder{Status: "preparing"}.Active(now))
	assert.False(t, domain.RestaurantOrder{Status: "completed"}.Active(now))
	assert.False(t, domain.RestaurantOrder{Status: "Cancelled"}.Active(now))
	assert.False(t, domain.RestaurantOrder{Status: "PAID"}.Active(now))
}
