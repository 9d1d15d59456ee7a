package reconcile

import (
	"strings"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// ResolveStatus derives the single display status for a unit from its active
// matching records. candidates should already be filtered by ActiveMatches;
// passing unfiltered records is tolerated but wasteful.
//
// Rules, in order:
//   - a unit whose own intrinsic status is maintenance is maintenance no
//     matter what matches it,
//   - any active match makes a room occupied; for a table the first match
//     decides between reserved (reservation or reservation-type order) and
//     booked,
//   - otherwise the unit is available. An unknown or missing intrinsic
//     status never errors, it just reads as available.
func ResolveStatus(unit domain.PhysicalUnit, candidates []domain.ActivityRecord) domain.UnitStatus {
	if strings.EqualFold(unit.Status, string(domain.StatusMaintenance)) {
		return domain.StatusMaintenance
	}
	if len(candidates) == 0 {
		return domain.StatusAvailable
	}

	if unit.Kind == domain.UnitTable {
		// The first active match decides; further matches only contribute to
		// aggregation, never to status.
		switch rec := candidates[0].(type) {
		case domain.Reservation:
			return domain.StatusReserved
		case domain.RestaurantOrder:
			if rec.IsReservationType() {
				return domain.StatusReserved
			}
			return domain.StatusBooked
		default:
			return domain.StatusBooked
		}
	}
	return domain.StatusOccupied
}

// DisplayDetails extracts the guest-facing fields (name, VIP flag, GRC) from
// the first active match. With multiple simultaneous matches encounter order
// is authoritative, matching the status tie-break.
func DisplayDetails(candidates []domain.ActivityRecord) (guestName string, vip bool, grc string) {
	if len(candidates) == 0 {
		return "", false, ""
	}
	switch rec := candidates[0].(type) {
	case domain.Booking:
		return rec.GuestName, rec.VIP, rec.GRCNumber
	case domain.Reservation:
		return rec.GuestName, rec.VIP, rec.GRCNumber
	case domain.RestaurantOrder:
		return rec.GuestName, false, ""
	case domain.CabBooking:
		return rec.GuestName, false, ""
	}
	return "", false, ""
}
