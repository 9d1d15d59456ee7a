package dto

import (
	"time"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitCashRequest asks the cash engine to split a gross payment between
// reception and office and post the resulting ledger entries.
type SplitCashRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	KeepPercent decimal.Decimal `json:"keepPercent"`
	Source      string          `json:"source" binding:"required,cashsource"`
	Description string          `json:"description"`
}

// RecordCashTransactionRequest posts a single manual ledger entry.
type RecordCashTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=KEEP SENT"`
	Source      string          `json:"source" binding:"required,cashsource"`
	Description string          `json:"description"`
}

// CashTransactionResponse is one ledger entry as exposed to callers.
type CashTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// CashSplitResponse reports the two legs of a posted split.
type CashSplitResponse struct {
	Gross        decimal.Decimal           `json:"gross"`
	KeepPercent  decimal.Decimal           `json:"keepPercent"`
	KeepAmount   decimal.Decimal           `json:"keepAmount"`
	SendAmount   decimal.Decimal           `json:"sendAmount"`
	Transactions []CashTransactionResponse `json:"transactions"`
}

// SourceTotalsResponse is one per-source row of the rollup.
type SourceTotalsResponse struct {
	Source          string          `json:"source"`
	TotalReceived   decimal.Decimal `json:"totalReceived"`
	CashInReception decimal.Decimal `json:"cashInReception"`
	TotalSent       decimal.Decimal `json:"totalSent"`
}

// CashRollupResponse is the cash dashboard payload.
type CashRollupResponse struct {
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	Sources []SourceTotalsResponse `json:"sources"`
	Totals  struct {
		TotalReceived   decimal.Decimal `json:"totalReceived"`
		CashInReception decimal.Decimal `json:"cashInReception"`
		TotalSent       decimal.Decimal `json:"totalSent"`
	} `json:"totals"`
	Transactions []CashTransactionResponse `json:"transactions"`
}

// ToCashTransactionResponse converts a domain ledger entry to its DTO.
func ToCashTransactionResponse(txn domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Source:        string(txn.Source),
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToListCashTransactionResponse converts a slice of ledger entries.
func ToListCashTransactionResponse(txns []domain.CashTransaction) []CashTransactionResponse {
	res := make([]CashTransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToCashTransactionResponse(txn)
	}
	return res
}

// ToCashSplitResponse converts a posted split to its DTO.
func ToCashSplitResponse(split *domain.CashSplit) CashSplitResponse {
	return CashSplitResponse{
		Gross:        split.Gross,
		KeepPercent:  split.KeepPercent,
		KeepAmount:   split.KeepAmount,
		SendAmount:   split.SendAmount,
		Transactions: ToListCashTransactionResponse(split.Transactions),
	}
}

// ToCashRollupResponse converts a domain rollup to the dashboard DTO.
func ToCashRollupResponse(rollup *domain.CashRollup) CashRollupResponse {
	res := CashRollupResponse{
		From:         rollup.From.Format("2006-01-02"),
		To:           rollup.To.Format("2006-01-02"),
		Sources:      make([]SourceTotalsResponse, len(rollup.Sources)),
		Transactions: ToListCashTransactionResponse(rollup.Transactions),
	}
	for i, src := range rollup.Sources {
		res.Sources[i] = SourceTotalsResponse{
			Source:          string(src.Source),
			TotalReceived:   src.TotalReceived,
			CashInReception: src.CashInReception,
			TotalSent:       src.TotalSent,
		}
	}
	res.Totals.TotalReceived = rollup.TotalReceived
	res.Totals.CashInReception = rollup.CashInReception
	res.Totals.TotalSent = rollup.TotalSent
	return res
}
