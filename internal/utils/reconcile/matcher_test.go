package reconcile_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/hotelops/frontdesk_backend/internal/utils/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches_ResolutionOrder(t *testing.T) {
	unitID := domain.NewFlexID("101")

	tests := []struct {
		name   string
		record domain.ActivityRecord
		want   bool
	}{
		{
			name:   "direct scalar string reference",
			record: domain.Booking{BookingID: "b1", RoomNumber: domain.NewFlexID("101")},
			want:   true,
		},
		{
			name:   "direct scalar numeric reference matches string unit id",
			record: domain.Booking{BookingID: "b2", RoomNumber: domain.NewFlexID("101.0")},
			want:   true,
		},
		{
			name: "array of embedded objects",
			record: domain.Booking{
				BookingID:    "b3",
				RoomAssigned: domain.ListRef(domain.EmbeddedRef(domain.NewFlexID("101"))),
			},
			want: true,
		},
		{
			name: "array of scalars",
			record: domain.Booking{
				BookingID:    "b4",
				RoomAssigned: domain.ListRef(domain.ScalarRef(domain.NewFlexID("204")), domain.ScalarRef(domain.NewFlexID("101"))),
			},
			want: true,
		},
		{
			name: "single embedded object",
			record: domain.Booking{
				BookingID:    "b5",
				RoomAssigned: domain.EmbeddedRef(domain.NewFlexID("101")),
			},
			want: true,
		},
		{
			name:   "no identity fields at all",
			record: domain.Booking{BookingID: "b6"},
			want:   false,
		},
		{
			name: "wrong room everywhere",
			record: domain.Booking{
				BookingID:    "b7",
				RoomNumber:   domain.NewFlexID("202"),
				RoomAssigned: domain.ListRef(domain.EmbeddedRef(domain.NewFlexID("303"))),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.Matches(unitID, tt.record))
		})
	}
}

func TestMatches_NumericAndStringUnitIDsAgree(t *testing.T) {
	// A record with roomAssigned = [{room_number: "101"}] must match the unit
	// whether its id was parsed from the number 101 or the string "101".
	var rec domain.Booking
	payload := []byte(`{"bookingId":"b1","status":"Confirmed","roomAssigned":[{"room_number":"101"}]}`)
	require.NoError(t, json.Unmarshal(payload, &rec))

	fromString := domain.NewFlexID("101")
	var fromNumber domain.FlexID
	require.NoError(t, json.Unmarshal([]byte(`101`), &fromNumber))

	assert.True(t, reconcile.Matches(fromString, rec))
	assert.True(t, reconcile.Matches(fromNumber, rec))
}

func TestMatches_MalformedShapesNeverError(t *testing.T) {
	// The matcher must treat garbage identity fields as non-matching, not
	// panic or propagate decode errors.
	payloads := []string{
		`{"bookingId":"m1","roomAssigned":true}`,
		`{"bookingId":"m2","roomAssigned":{"unexpected":"shape"}}`,
		`{"bookingId":"m3","roomAssigned":[null,false,{"room_number":null}]}`,
		`{"bookingId":"m4","roomNumber":{"nested":"object"}}`,
	}
	unitID := domain.NewFlexID("101")
	for _, payload := range payloads {
		var rec domain.Booking
		require.NoError(t, json.Unmarshal([]byte(payload), &rec), payload)
		assert.False(t, reconcile.Matches(unitID, rec), payload)
	}
}

func TestActiveMatches_FiltersAndPreservesOrder(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	first := domain.Booking{BookingID: "first", Status: "Confirmed", RoomNumber: domain.NewFlexID("5"), CheckOut: tomorrow}
	second := domain.Booking{BookingID: "second", Status: "Booked", RoomNumber: domain.NewFlexID("5"), CheckOut: tomorrow}
	cancelled := domain.Booking{BookingID: "gone", Status: "Cancelled", RoomNumber: domain.NewFlexID("5"), CheckOut: tomorrow}
	otherRoom := domain.Booking{BookingID: "elsewhere", Status: "Confirmed", RoomNumber: domain.NewFlexID("6"), CheckOut: tomorrow}

	got := reconcile.ActiveMatches(domain.NewFlexID("5"),
		[]domain.ActivityRecord{first, cancelled, second, otherRoom}, now)

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].RecordID(), "encounter order must be preserved")
	assert.Equal(t, "second", got[1].RecordID())
}
