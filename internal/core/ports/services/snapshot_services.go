package services

import (
	"context"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// SnapshotProviderSvc supplies consistent snapshots of the upstream
// collections to the reconciliation services.
type SnapshotProviderSvc interface {
	// Snapshot returns the current snapshot, serving from cache when fresh.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	// ForceRefresh bypasses the cache and fetches a new snapshot. Overlapping
	// refreshes resolve last-request-wins: a response belonging to a
	// superseded request is discarded.
	ForceRefresh(ctx context.Context) (*domain.Snapshot, error)
}

// SnapshotPollerSvc runs the periodic background refresh.
type SnapshotPollerSvc interface {
	// StartPolling refreshes the snapshot on a fixed interval until the
	// context is cancelled. It returns immediately; the loop runs in its own
	// goroutine.
	StartPolling(ctx context.Context)
}

// SnapshotSvcFacade combines snapshot provision and polling.
type SnapshotSvcFacade interface {
	SnapshotProviderSvc
	SnapshotPollerSvc
}
