package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/utils/reconcile"
)

// floorService implements the FloorSvcFacade interface: it reconciles every
// room and table against one upstream snapshot and overlays the live derived
// state (status, elapsed occupancy, revenue).
type floorService struct {
	BaseService
	snapshots portssvc.SnapshotProviderSvc
	now       func() time.Time
}

// FloorServiceOption is a functional option for configuring the floor service
type FloorServiceOption func(*floorService)

// WithFloorClock overrides the service's time source, used in tests.
func WithFloorClock(now func() time.Time) FloorServiceOption {
	return func(s *floorService) {
		s.now = now
	}
}

// NewFloorService creates a new floor service with the provided options
func NewFloorService(snapshots portssvc.SnapshotProviderSvc, options ...FloorServiceOption) portssvc.FloorSvcFacade {
	svc := &floorService{
		snapshots: snapshots,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure floorService implements the FloorSvcFacade interface
var _ portssvc.FloorSvcFacade = (*floorService)(nil)

// LiveBoard reconciles every unit against the current snapshot.
func (s *floorService) LiveBoard(ctx context.Context) (*domain.FloorBoard, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to obtain upstream snapshot")
		return nil, fmt.Errorf("failed to obtain upstream snapshot: %w", err)
	}
	return s.buildBoard(ctx, snap), nil
}

// Refresh forces a snapshot refresh and reconciles against the new data.
func (s *floorService) Refresh(ctx context.Context) (*domain.FloorBoard, error) {
	snap, err := s.snapshots.ForceRefresh(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh upstream snapshot")
		return nil, fmt.Errorf("failed to refresh upstream snapshot: %w", err)
	}
	return s.buildBoard(ctx, snap), nil
}

// UnitView reconciles a single unit.
func (s *floorService) UnitView(ctx context.Context, kind domain.UnitKind, unitID string) (*domain.UnitView, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to obtain upstream snapshot")
		return nil, fmt.Errorf("failed to obtain upstream snapshot: %w", err)
	}

	id := domain.NewFlexID(unitID)
	units := snap.Tables
	if kind == domain.UnitRoom {
		units = snap.Rooms
	}
	for i := range units {
		if units[i].ID.Equals(id) {
			view := s.buildUnitView(ctx, units[i], snap)
			return &view, nil
		}
	}
	return nil, fmt.Errorf("unit %s/%s: %w", kind, unitID, apperrors.ErrNotFound)
}

func (s *floorService) buildBoard(ctx context.Context, snap *domain.Snapshot) *domain.FloorBoard {
	board := &domain.FloorBoard{
		Rooms:       make([]domain.UnitView, 0, len(snap.Rooms)),
		Tables:      make([]domain.UnitView, 0, len(snap.Tables)),
		Warnings:    snap.Warnings,
		GeneratedAt: s.now(),
	}
	for i := range snap.Rooms {
		board.Rooms = append(board.Rooms, s.buildUnitView(ctx, snap.Rooms[i], snap))
	}
	for i := range snap.Tables {
		board.Tables = append(board.Tables, s.buildUnitView(ctx, snap.Tables[i], snap))
	}
	return board
}

// buildUnitView derives the full reconciled state of one unit from the
// snapshot: status from the active matches, display details from the first
// match, elapsed time from the earliest match, revenue from the merged item
// lists of the unit's active orders.
func (s *floorService) buildUnitView(ctx context.Context, unit domain.PhysicalUnit, snap *domain.Snapshot) domain.UnitView {
	now := s.now()

	candidates := claimantsFor(unit.Kind, snap)
	matches := reconcile.ActiveMatches(unit.ID, candidates, now)
	if len(matches) > 1 {
		// Operationally there should be at most one active claim per unit;
		// encounter order decides the display but the duplication is worth a
		// data-quality signal.
		s.LogWarn(ctx, "Multiple active records match one unit",
			slog.String("unit", unit.ID.String()),
			slog.String("kind", string(unit.Kind)),
			slog.Int("matches", len(matches)))
	}

	view := domain.UnitView{
		Unit:   unit,
		Status: reconcile.ResolveStatus(unit, matches),
	}
	view.GuestName, view.VIP, view.GRCNumber = reconcile.DisplayDetails(matches)

	if view.Status == domain.StatusOccupied || view.Status == domain.StatusBooked || view.Status == domain.StatusReserved {
		if start, ok := reconcile.StartTime(matches); ok {
			view.OccupiedSince = &start
			view.Elapsed = reconcile.FormatElapsed(start, now)
		}
	}

	var activeOrders []domain.RestaurantOrder
	for _, rec := range matches {
		if order, ok := rec.(domain.RestaurantOrder); ok {
			activeOrders = append(activeOrders, order)
		}
	}
	view.RevenueTotal, view.Items = reconcile.OrdersRevenue(activeOrders)
	view.KOTCount = reconcile.KOTCount(view.Items)

	if unit.Kind == domain.UnitRoom {
		for _, cab := range snap.CabBookings {
			if cab.Active(now) && reconcile.Matches(unit.ID, cab) {
				view.CabAwaiting = true
				break
			}
		}
	}
	return view
}

// claimantsFor selects which record collections can claim a unit of the given
// kind: bookings and reservations for rooms, orders and reservations for
// tables. Cab bookings only flag pickups and never drive status.
func claimantsFor(kind domain.UnitKind, snap *domain.Snapshot) []domain.ActivityRecord {
	var records []domain.ActivityRecord
	if kind == domain.UnitRoom {
		for _, b := range snap.Bookings {
			records = append(records, b)
		}
		for _, r := range snap.Reservations {
			records = append(records, r)
		}
		return records
	}
	for _, o := range snap.Orders {
		records = append(records, o)
	}
	for _, r := range snap.Reservations {
		records = append(records, r)
	}
	return records
}
