package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/utils/cache"
)

const snapshotCacheKey = "upstream-snapshot"

// snapshotService fetches and caches consistent snapshots of the upstream
// collections. A failed source degrades to an empty collection plus a
// warning; overlapping refreshes resolve last-request-wins via a per-service
// sequence number, so a slow stale response can never overwrite a newer one.
type snapshotService struct {
	BaseService
	sources  portsrepo.SourceProvider
	cache    *cache.TTLCache
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	issued  uint64 // sequence of the most recently started fetch
	applied uint64 // sequence of the snapshot currently visible
	latest  *domain.Snapshot
}

// SnapshotServiceOption is a functional option for configuring the snapshot service
type SnapshotServiceOption func(*snapshotService)

// WithSnapshotCache sets the TTL cache fronting the upstream fetches.
func WithSnapshotCache(c *cache.TTLCache) SnapshotServiceOption {
	return func(s *snapshotService) {
		s.cache = c
	}
}

// WithPollInterval sets the background refresh interval.
func WithPollInterval(interval time.Duration) SnapshotServiceOption {
	return func(s *snapshotService) {
		s.interval = interval
	}
}

// WithSnapshotClock overrides the service's time source, used in tests.
func WithSnapshotClock(now func() time.Time) SnapshotServiceOption {
	return func(s *snapshotService) {
		s.now = now
	}
}

// NewSnapshotService creates a new snapshot service with the provided options
func NewSnapshotService(sources portsrepo.SourceProvider, options ...SnapshotServiceOption) portssvc.SnapshotSvcFacade {
	svc := &snapshotService{
		sources:  sources,
		cache:    cache.New(30 * time.Second),
		interval: 30 * time.Second,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure snapshotService implements the SnapshotSvcFacade interface
var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

// Snapshot returns the current snapshot, serving from cache when fresh.
func (s *snapshotService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if cached, ok := s.cache.Get(snapshotCacheKey); ok {
		if snap, ok := cached.(*domain.Snapshot); ok {
			return snap, nil
		}
	}
	return s.refresh(ctx)
}

// ForceRefresh bypasses the cache and fetches a new snapshot.
func (s *snapshotService) ForceRefresh(ctx context.Context) (*domain.Snapshot, error) {
	return s.refresh(ctx)
}

// StartPolling refreshes the snapshot on a fixed interval until the context
// is cancelled.
func (s *snapshotService) StartPolling(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.LogInfo(ctx, "Snapshot polling stopped")
				return
			case <-ticker.C:
				if _, err := s.refresh(ctx); err != nil {
					s.LogWarn(ctx, "Periodic snapshot refresh failed",
						slog.String("error", err.Error()))
				}
			}
		}
	}()
}

// refresh performs one full fetch cycle and commits the result if no newer
// fetch has landed in the meantime.
func (s *snapshotService) refresh(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	snap := s.fetchAll(ctx)
	snap.Seq = seq

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.issued && s.latest != nil {
		// A newer fetch was issued after this one started; this response is
		// stale under last-request-wins and must be discarded. The very
		// first snapshot is kept even if superseded, so callers never see
		// nil while a newer fetch is still in flight.
		s.LogDebug(ctx, "Discarding superseded snapshot",
			slog.Uint64("seq", seq), slog.Uint64("issued", s.issued),
			slog.Uint64("applied", s.applied))
		return s.latest, nil
	}
	s.applied = seq
	s.latest = snap
	s.cache.Set(snapshotCacheKey, snap)
	return snap, nil
}

// fetchAll pulls every collection once. Any source failure substitutes an
// empty collection and records a warning; reconciliation proceeds degraded
// but consistent rather than aborting.
func (s *snapshotService) fetchAll(ctx context.Context) *domain.Snapshot {
	snap := &domain.Snapshot{FetchedAt: s.now()}

	var warnings []domain.SourceWarning
	warn := func(source string, err error) {
		s.LogWarn(ctx, "Upstream source unavailable, substituting empty collection",
			slog.String("source", source), slog.String("error", err.Error()))
		warnings = append(warnings, domain.SourceWarning{Source: source, Message: err.Error()})
	}

	var err error
	if snap.Rooms, err = s.sources.FetchRooms(ctx); err != nil {
		snap.Rooms = nil
		warn("rooms", err)
	}
	if snap.Tables, err = s.sources.FetchTables(ctx); err != nil {
		snap.Tables = nil
		warn("tables", err)
	}
	if snap.Bookings, err = s.sources.FetchBookings(ctx); err != nil {
		snap.Bookings = nil
		warn("bookings", err)
	}
	if snap.Reservations, err = s.sources.FetchReservations(ctx); err != nil {
		snap.Reservations = nil
		warn("reservations", err)
	}
	if snap.Orders, err = s.sources.FetchOrders(ctx); err != nil {
		snap.Orders = nil
		warn("orders", err)
	}
	if snap.CabBookings, err = s.sources.FetchCabBookings(ctx); err != nil {
		snap.CabBookings = nil
		warn("cabs", err)
	}

	snap.Warnings = warnings
	return snap
}
