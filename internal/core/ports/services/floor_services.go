package services

import (
	"context"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// FloorReaderSvc defines the read side of the live floor view.
type FloorReaderSvc interface {
	// LiveBoard reconciles every room and table against one snapshot and
	// returns the full operational view.
	LiveBoard(ctx context.Context) (*domain.FloorBoard, error)

	// UnitView reconciles a single unit. Returns apperrors.ErrNotFound when
	// the unit is not present in the snapshot.
	UnitView(ctx context.Context, kind domain.UnitKind, unitID string) (*domain.UnitView, error)
}

// FloorRefresherSvc triggers an out-of-cycle snapshot refresh (the user
// pressed the refresh button).
type FloorRefresherSvc interface {
	Refresh(ctx context.Context) (*domain.FloorBoard, error)
}

// FloorSvcFacade combines all floor view service interfaces.
type FloorSvcFacade interface {
	FloorReaderSvc
	FloorRefresherSvc
}
