package domain

// UnitKind distinguishes the two kinds of physical units the front desk tracks.
type UnitKind string

const (
	UnitRoom  UnitKind = "ROOM"
	UnitTable UnitKind = "TABLE"
)

// UnitStatus is the single display status derived for a physical unit.
type UnitStatus string

const (
	StatusAvailable   UnitStatus = "available"
	StatusOccupied    UnitStatus = "occupied"
	StatusBooked      UnitStatus = "booked"
	StatusReserved    UnitStatus = "reserved"
	StatusMaintenance UnitStatus = "maintenance"
)

// PhysicalUnit is a room or a restaurant table. Units are created and updated
// by the external inventory service; this core only reads them. Status holds
// the unit's own intrinsic state as reported upstream (for example
// "maintenance"), not the derived display status.
type PhysicalUnit struct {
	ID       FlexID   `json:"id"`
	Kind     UnitKind `json:"kind"`
	Status   string   `json:"status"`
	Capacity int      `json:"capacity"`
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
}
