package pgsql

import (
	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider assembles the repository container. The upstream
// source provider is injected rather than constructed here because it talks
// HTTP, not Postgres.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sources portsrepo.SourceProvider) portsrepo.RepositoryProvider {
	cashTransactionRepo := NewPgxCashTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CashTransactionRepo: cashTransactionRepo,
		Sources:             sources,
	}
}
