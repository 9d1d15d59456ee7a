package repositories

import (
	"context"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
)

// CashTransactionReader defines read operations over the cash ledger.
type CashTransactionReader interface {
	// ListCashTransactions retrieves ledger entries created within [from, to),
	// newest first. A non-empty source narrows the listing to that source.
	ListCashTransactions(ctx context.Context, from, to time.Time, source domain.CashSource) ([]domain.CashTransaction, error)
}

// CashTransactionWriter defines write operations over the cash ledger.
// Ledger entries are append-only; there is deliberately no update or delete.
type CashTransactionWriter interface {
	// SaveCashTransactions persists a batch of ledger entries atomically:
	// either every entry is written or none is.
	SaveCashTransactions(ctx context.Context, txns []domain.CashTransaction) error
}

// CashTransactionRepositoryFacade combines all cash ledger repository
// interfaces for clients that need full access.
type CashTransactionRepositoryFacade interface {
	CashTransactionReader
	CashTransactionWriter
}

// CashTransactionRepositoryWithTx extends the facade with transaction
// management.
type CashTransactionRepositoryWithTx interface {
	CashTransactionRepositoryFacade
	TransactionManager
}
