package pgsql

import (
	"context"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCashTransactionRepository implements the ports.CashTransactionRepositoryFacade interface using pgxpool.
type PgxCashTransactionRepository struct {
	BaseRepository
}

// NewPgxCashTransactionRepository creates a new PgxCashTransactionRepository.
func NewPgxCashTransactionRepository(db *pgxpool.Pool) *PgxCashTransactionRepository {
	return &PgxCashTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure the repository satisfies the port
var _ portsrepo.CashTransactionRepositoryWithTx = (*PgxCashTransactionRepository)(nil)

// SaveCashTransactions persists a batch of ledger entries in one transaction.
// The ledger is append-only; entries are never updated in place, and a split
// posts both of its legs here so either both land or neither does.
func (r *PgxCashTransactionRepository) SaveCashTransactions(ctx context.Context, txns []domain.CashTransaction) error {
	if len(txns) == 0 {
		return nil
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		for _, txn := range txns {
			_, err := tx.Exec(ctx, `
				INSERT INTO cash_transactions (
					transaction_id, amount, type, source, description, created_at, created_by
				) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				txn.TransactionID, txn.Amount, string(txn.Type), string(txn.Source),
				txn.Description, txn.CreatedAt, txn.CreatedBy,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to save cash transaction", err)
			}
		}
		return nil
	})
}

// ListCashTransactions retrieves ledger entries created within [from, to),
// newest first. Entries sharing a created_at timestamp come back in insertion
// order via the entry_seq tiebreaker.
func (r *PgxCashTransactionRepository) ListCashTransactions(ctx context.Context, from, to time.Time, source domain.CashSource) ([]domain.CashTransaction, error) {
	query := `
		SELECT transaction_id, amount, type, source, description, created_at, created_by
		FROM cash_transactions
		WHERE created_at >= $1 AND created_at < $2`
	args := []interface{}{from, to}

	if source != "" {
		query += ` AND source = $3`
		args = append(args, string(source))
	}
	query += ` ORDER BY created_at DESC, entry_seq ASC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cash transactions", err)
	}
	defer rows.Close()

	txns := make([]domain.CashTransaction, 0)
	for rows.Next() {
		var txn domain.CashTransaction
		var txnType, txnSource string
		if err := rows.Scan(
			&txn.TransactionID, &txn.Amount, &txnType, &txnSource,
			&txn.Description, &txn.CreatedAt, &txn.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash transaction", err)
		}
		txn.Type = domain.CashTransactionType(txnType)
		txn.Source = domain.CashSource(txnSource)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read cash transactions", err)
	}

	return txns, nil
}
