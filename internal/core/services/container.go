package services

import (
	"time"

	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/utils/cache"
)

// ContainerConfig carries the tunables the service container needs.
type ContainerConfig struct {
	// RefreshInterval is the background snapshot poll period.
	RefreshInterval time.Duration
	// CacheTTL bounds how long a snapshot may be served without refetching.
	CacheTTL time.Duration
}

// NewServiceContainer creates all application services with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg ContainerConfig) *portssvc.ServiceContainer {
	snapshotSvc := NewSnapshotService(repos.Sources,
		WithSnapshotCache(cache.New(cfg.CacheTTL)),
		WithPollInterval(cfg.RefreshInterval),
	)

	return &portssvc.ServiceContainer{
		Floor:    NewFloorService(snapshotSvc),
		Cash:     NewCashService(repos.CashTransactionRepo),
		Snapshot: snapshotSvc,
	}
}
