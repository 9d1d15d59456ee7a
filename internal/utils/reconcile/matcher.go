// Package reconcile holds the pure reconciliation core: identity matching,
// status resolution, elapsed-time computation and revenue aggregation over
// snapshots of the upstream collections. Everything here is a pure function
// of its inputs so identical snapshots always reconcile identically.
package reconcile

import (
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// Matches reports whether an activity record belongs to the unit with the
// given identifier. Resolution order, first satisfied path wins:
//
//  1. the record's direct scalar reference (string or numeric),
//  2. the record's assigned reference when it is an array,
//  3. the record's assigned reference when it is a single embedded object.
//
// Absent or malformed fields evaluate to "no match". Once a path returns
// true no later path is consulted.
func Matches(unitID domain.FlexID, record domain.ActivityRecord) bool {
	if unitID.IsZero() || record == nil {
		return false
	}

	if record.DirectRef().Equals(unitID) {
		return true
	}

	assigned := record.AssignedRef()
	if assigned.Kind() == domain.RefList && assigned.MatchesID(unitID) {
		return true
	}
	if assigned.Kind() == domain.RefEmbedded && assigned.MatchesID(unitID) {
		return true
	}
	// A bare scalar under the assigned field is not one of the documented
	// shapes but some collaborators emit it; treat it like the embedded case.
	if assigned.Kind() == domain.RefScalar && assigned.MatchesID(unitID) {
		return true
	}
	return false
}

// ActiveMatches filters records down to those that are active now and that
// match the unit, preserving encounter order.
func ActiveMatches(unitID domain.FlexID, records []domain.ActivityRecord, now time.Time) []domain.ActivityRecord {
	var out []domain.ActivityRecord
	for _, rec := range records {
		if rec == nil || !rec.Active(now) {
			continue
		}
		if Matches(unitID, rec) {
			out = append(out, rec)
		}
	}
	return out
}
