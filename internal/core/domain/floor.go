package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitView is the fully reconciled state of one room or table: the derived
// status plus the live overlays (elapsed occupancy, revenue total, merged
// item list) the floor board renders.
type UnitView struct {
	Unit   PhysicalUnit `json:"unit"`
	Status UnitStatus   `json:"status"`

	// Display details from the first active matching record, if any.
	GuestName string `json:"guestName,omitempty"`
	VIP       bool   `json:"vip,omitempty"`
	GRCNumber string `json:"grcNumber,omitempty"`

	// OccupiedSince is the earliest createdAt across the active records
	// contributing to the occupied status; nil when the unit is free.
	OccupiedSince *time.Time `json:"occupiedSince,omitempty"`
	Elapsed       string     `json:"elapsed,omitempty"`

	RevenueTotal decimal.Decimal `json:"revenueTotal"`
	Items        []LineItem      `json:"items,omitempty"`
	KOTCount     int             `json:"kotCount"`

	// CabAwaiting flags a pending cab pickup tied to this unit's guest.
	CabAwaiting bool `json:"cabAwaiting,omitempty"`
}

// FloorBoard is the live operational view: every unit reconciled against the
// same snapshot, so the whole board is internally consistent.
type FloorBoard struct {
	Rooms       []UnitView      `json:"rooms"`
	Tables      []UnitView      `json:"tables"`
	Warnings    []SourceWarning `json:"warnings,omitempty"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
