package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SnapshotProvider ---
type MockSnapshotProvider struct {
	mock.Mock
}

func (m *MockSnapshotProvider) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotProvider) ForceRefresh(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

// --- Test Suite ---
type FloorServiceTestSuite struct {
	suite.Suite
	mockSnapshots *MockSnapshotProvider
	service       portssvc.FloorSvcFacade
	now           time.Time
}

func (suite *FloorServiceTestSuite) SetupTest() {
	suite.mockSnapshots = new(MockSnapshotProvider)
	suite.now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewFloorService(suite.mockSnapshots,
		services.WithFloorClock(func() time.Time { return suite.now }),
	)
}

func (suite *FloorServiceTestSuite) tomorrow() time.Time {
	return suite.now.AddDate(0, 0, 1)
}

func (suite *FloorServiceTestSuite) roomView(board *domain.FloorBoard, id string) *domain.UnitView {
	want := domain.NewFlexID(id)
	for i := range board.Rooms {
		if board.Rooms[i].Unit.ID.Equals(want) {
			return &board.Rooms[i]
		}
	}
	return nil
}

func (suite *FloorServiceTestSuite) tableView(board *domain.FloorBoard, id string) *domain.UnitView {
	want := domain.NewFlexID(id)
	for i := range board.Tables {
		if board.Tables[i].Unit.ID.Equals(want) {
			return &board.Tables[i]
		}
	}
	return nil
}

// --- Room reconciliation ---

func (suite *FloorServiceTestSuite) TestLiveBoard_RoomWithNoClaimsIsAvailable() {
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom, Status: "clean"},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "5")
	suite.Require().NotNil(room)
	suite.Equal(domain.StatusAvailable, room.Status)
	suite.Empty(room.Elapsed)
	suite.Nil(room.OccupiedSince)
}

func (suite *FloorServiceTestSuite) TestLiveBoard_ConfirmedBookingOccupiesRoom() {
	checkedIn := suite.now.Add(-(time.Hour + 2*time.Minute + 3*time.Second))
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom},
		},
		Bookings: []domain.Booking{
			{
				BookingID:  "bk-1",
				GRCNumber:  "GRC-0042",
				GuestName:  "A. Verma",
				VIP:        true,
				Status:     "Confirmed",
				RoomNumber: domain.NewFlexID("5"),
				CheckOut:   suite.tomorrow(),
				CreatedAt:  checkedIn,
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "5")
	suite.Require().NotNil(room)
	suite.Equal(domain.StatusOccupied, room.Status)
	suite.Equal("A. Verma", room.GuestName)
	suite.Equal("GRC-0042", room.GRCNumber)
	suite.True(room.VIP)
	suite.Equal("01:02:03", room.Elapsed)
	suite.Require().NotNil(room.OccupiedSince)
	suite.True(room.OccupiedSince.Equal(checkedIn))
}

func (suite *FloorServiceTestSuite) TestLiveBoard_EmbeddedAssignmentMatchesNumericRoom() {
	// The booking carries no direct room number; only the assignment list
	// [{room_number: "5"}] ties it to the room.
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom},
		},
		Bookings: []domain.Booking{
			{
				BookingID:    "bk-2",
				Status:       "Booked",
				GuestName:    "B. Rao",
				RoomAssigned: domain.ListRef(domain.EmbeddedRef(domain.NewFlexID("5"))),
				CheckOut:     suite.tomorrow(),
				CreatedAt:    suite.now.Add(-time.Hour),
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "5")
	suite.Require().NotNil(room)
	suite.Equal(domain.StatusOccupied, room.Status)
	suite.Equal("B. Rao", room.GuestName)
}

func (suite *FloorServiceTestSuite) TestLiveBoard_ExpiredCheckoutLeavesRoomAvailable() {
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom},
		},
		Bookings: []domain.Booking{
			{
				BookingID:  "bk-3",
				Status:     "Confirmed",
				RoomNumber: domain.NewFlexID("5"),
				CheckOut:   suite.now.AddDate(0, 0, -1),
				CreatedAt:  suite.now.AddDate(0, 0, -3),
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "5")
	suite.Require().NotNil(room)
	suite.Equal(domain.StatusAvailable, room.Status, "a booking past its checkout no longer holds the room")
}

func (suite *FloorServiceTestSuite) TestLiveBoard_MaintenanceOverridesActiveBooking() {
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("5"), Kind: domain.UnitRoom, Status: "Maintenance"},
		},
		Bookings: []domain.Booking{
			{
				BookingID:  "bk-4",
				Status:     "Confirmed",
				RoomNumber: domain.NewFlexID("5"),
				CheckOut:   suite.tomorrow(),
				CreatedAt:  suite.now.Add(-time.Hour),
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "5")
	suite.Require().NotNil(room)
	suite.Equal(domain.StatusMaintenance, room.Status)
}

func (suite *FloorServiceTestSuite) TestLiveBoard_CabPickupFlagsRoomWithoutDrivingStatus() {
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("7"), Kind: domain.UnitRoom},
		},
		CabBookings: []domain.CabBooking{
			{
				CabBookingID: "cab-1",
				Status:       "waiting",
				RoomNumber:   domain.NewFlexID("7"),
				CreatedAt:    suite.now.Add(-10 * time.Minute),
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	room := suite.roomView(board, "7")
	suite.Require().NotNil(room)
	suite.True(room.CabAwaiting)
	suite.Equal(domain.StatusAvailable, room.Status, "cab pickups never occupy the room")
}

// --- Table reconciliation ---

func (suite *FloorServiceTestSuite) TestLiveBoard_TableRevenueMergesActiveOrders() {
	snap := &domain.Snapshot{
		Tables: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("T1"), Kind: domain.UnitTable},
		},
		Orders: []domain.RestaurantOrder{
			{
				OrderID:     "ord-1",
				Status:      "running",
				TableNumber: domain.NewFlexID("T1"),
				CreatedAt:   suite.now.Add(-30 * time.Minute),
				AllKOTItems: []domain.LineItem{
					{Name: "Paneer Tikka", Price: decimal.NewFromInt(100), Quantity: 1, KOTNumber: domain.NewFlexID("1")},
					{Name: "Naan", Price: decimal.NewFromInt(25), Quantity: 2, KOTNumber: domain.NewFlexID("1")},
				},
			},
			{
				OrderID:     "ord-2",
				Status:      "running",
				TableNumber: domain.NewFlexID("T1"),
				CreatedAt:   suite.now.Add(-10 * time.Minute),
				AllKOTItems: []domain.LineItem{
					{Name: "Lassi", Price: decimal.NewFromInt(50), Quantity: 2, KOTNumber: domain.NewFlexID("2")},
				},
			},
			{
				OrderID:     "ord-3",
				Status:      "paid",
				TableNumber: domain.NewFlexID("T1"),
				CreatedAt:   suite.now.Add(-2 * time.Hour),
				AllKOTItems: []domain.LineItem{
					{Name: "Soup", Price: decimal.NewFromInt(80), Quantity: 1, KOTNumber: domain.NewFlexID("9")},
				},
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	table := suite.tableView(board, "T1")
	suite.Require().NotNil(table)
	suite.Equal(domain.StatusBooked, table.Status)
	suite.True(decimal.NewFromInt(250).Equal(table.RevenueTotal), "revenue = %s", table.RevenueTotal)
	suite.Len(table.Items, 3, "paid orders contribute nothing")
	suite.Equal(2, table.KOTCount)
}

func (suite *FloorServiceTestSuite) TestLiveBoard_ReservationTypeOrderReservesTable() {
	snap := &domain.Snapshot{
		Tables: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("T2"), Kind: domain.UnitTable},
		},
		Orders: []domain.RestaurantOrder{
			{
				OrderID:     "ord-4",
				OrderType:   "Reservation",
				Status:      "pending",
				TableNumber: domain.NewFlexID("T2"),
				CreatedAt:   suite.now.Add(-5 * time.Minute),
			},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	table := suite.tableView(board, "T2")
	suite.Require().NotNil(table)
	suite.Equal(domain.StatusReserved, table.Status)
}

// --- Snapshot plumbing ---

func (suite *FloorServiceTestSuite) TestLiveBoard_PropagatesSourceWarnings() {
	snap := &domain.Snapshot{
		Warnings: []domain.SourceWarning{
			{Source: "orders", Message: "upstream timeout"},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	board, err := suite.service.LiveBoard(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(board.Warnings, 1)
	suite.Equal("orders", board.Warnings[0].Source)
}

func (suite *FloorServiceTestSuite) TestRefresh_ForcesNewSnapshot() {
	snap := &domain.Snapshot{}
	suite.mockSnapshots.On("ForceRefresh", mock.Anything).Return(snap, nil).Once()

	_, err := suite.service.Refresh(context.Background())

	suite.Require().NoError(err)
	suite.mockSnapshots.AssertNotCalled(suite.T(), "Snapshot", mock.Anything)
}

func (suite *FloorServiceTestSuite) TestUnitView_FindsRoomByEquivalentID() {
	snap := &domain.Snapshot{
		Rooms: []domain.PhysicalUnit{
			{ID: domain.NewFlexID("101"), Kind: domain.UnitRoom},
		},
	}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	view, err := suite.service.UnitView(context.Background(), domain.UnitRoom, "101.0")

	suite.Require().NoError(err)
	suite.True(view.Unit.ID.Equals(domain.NewFlexID("101")))
}

func (suite *FloorServiceTestSuite) TestUnitView_UnknownUnitReturnsNotFound() {
	snap := &domain.Snapshot{}
	suite.mockSnapshots.On("Snapshot", mock.Anything).Return(snap, nil).Once()

	_, err := suite.service.UnitView(context.Background(), domain.UnitTable, "T9")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFloorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FloorServiceTestSuite))
}
