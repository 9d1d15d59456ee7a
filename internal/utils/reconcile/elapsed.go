package reconcile

import (
	"fmt"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// StartTime returns the earliest createdAt across the records currently
// contributing to a unit's occupied status. It is recomputed from the active
// set on every call rather than cached, so a record dropping out of the set
// moves the start time forward as the source data dictates. Records with a
// zero createdAt are skipped.
func StartTime(candidates []domain.ActivityRecord) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, rec := range candidates {
		t := rec.StartedAt()
		if t.IsZero() {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	return earliest, found
}

// FormatElapsed renders the duration between start and now as HH:MM:SS with
// zero padding. Hours are unbounded: there is no day rollover, so an
// occupancy running since yesterday reads 25:03:10, not 01:03:10. A start in
// the future clamps to 00:00:00.
func FormatElapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
