package dto

import (
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnitViewResponse is the reconciled state of one unit as rendered on the
// floor board.
type UnitViewResponse struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Capacity int    `json:"capacity"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`

	GuestName string `json:"guestName,omitempty"`
	VIP       bool   `json:"vip,omitempty"`
	GRCNumber string `json:"grcNumber,omitempty"`

	OccupiedSince *time.Time `json:"occupiedSince,omitempty"`
	Elapsed       string     `json:"elapsed,omitempty"`

	RevenueTotal decimal.Decimal   `json:"revenueTotal"`
	Items        []domain.LineItem `json:"items,omitempty"`
	KOTCount     int               `json:"kotCount"`
	CabAwaiting  bool              `json:"cabAwaiting,omitempty"`
}

// FloorBoardResponse is the full live view payload.
type FloorBoardResponse struct {
	Rooms       []UnitViewResponse     `json:"rooms"`
	Tables      []UnitViewResponse     `json:"tables"`
	Warnings    []domain.SourceWarning `json:"warnings,omitempty"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// ToUnitViewResponse flattens a domain unit view for the API.
func ToUnitViewResponse(view *domain.UnitView) UnitViewResponse {
	return UnitViewResponse{
		ID:            view.Unit.ID.String(),
		Kind:          string(view.Unit.Kind),
		Status:        string(view.Status),
		Capacity:      view.Unit.Capacity,
		Category:      view.Unit.Category,
		Location:      view.Unit.Location,
		GuestName:     view.GuestName,
		VIP:           view.VIP,
		GRCNumber:     view.GRCNumber,
		OccupiedSince: view.OccupiedSince,
		Elapsed:       view.Elapsed,
		RevenueTotal:  view.RevenueTotal,
		Items:         view.Items,
		KOTCount:      view.KOTCount,
		CabAwaiting:   view.CabAwaiting,
	}
}

// ToFloorBoardResponse converts the reconciled board to the API payload.
func ToFloorBoardResponse(board *domain.FloorBoard) FloorBoardResponse {
	res := FloorBoardResponse{
		Rooms:       make([]UnitViewResponse, len(board.Rooms)),
		Tables:      make([]UnitViewResponse, len(board.Tables)),
		Warnings:    board.Warnings,
		GeneratedAt: board.GeneratedAt,
	}
	for i := range board.Rooms {
		res.Rooms[i] = ToUnitViewResponse(&board.Rooms[i])
	}
	for i := range board.Tables {
		res.Tables[i] = ToUnitViewResponse(&board.Tables[i])
	}
	return res
}
