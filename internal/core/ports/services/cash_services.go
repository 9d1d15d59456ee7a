package services

import (
	"context"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/hotelops/frontdesk_backend/internal/dto"
)

// RollupFilter narrows a cash rollup to a date window and optionally to a
// single source. Date is only consulted when Filter is domain.FilterDate.
type RollupFilter struct {
	Filter domain.DateFilter
	Date   time.Time
	// Source empty means all sources.
	Source domain.CashSource
}

// CashReaderSvc defines the read side of the cash dashboard.
type CashReaderSvc interface {
	// Rollup aggregates the ledger over the filter window.
	Rollup(ctx context.Context, filter RollupFilter) (*domain.CashRollup, error)

	// ListTransactions returns the filtered ledger entries, newest first.
	ListTransactions(ctx context.Context, filter RollupFilter) ([]domain.CashTransaction, error)
}

// CashWriterSvc defines the posting side of the cash engine.
type CashWriterSvc interface {
	// SplitAndPost splits a gross payment by the keep percentage and posts
	// the resulting KEEP/SENT ledger entries atomically. A zero-amount leg
	// is never posted.
	SplitAndPost(ctx context.Context, req dto.SplitCashRequest, creatorUserID string) (*domain.CashSplit, error)

	// RecordTransaction posts one manual ledger entry.
	RecordTransaction(ctx context.Context, req dto.RecordCashTransactionRequest, creatorUserID string) (*domain.CashTransaction, error)
}

// CashSvcFacade combines all cash service interfaces.
type CashSvcFacade interface {
	CashReaderSvc
	CashWriterSvc
}
