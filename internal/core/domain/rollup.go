package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFilter selects the reporting window for a cash rollup.
type DateFilter string

const (
	FilterToday DateFilter = "today"
	FilterWeek  DateFilter = "week"
	FilterMonth DateFilter = "month"
	FilterYear  DateFilter = "year"
	// FilterDate means an explicit single day was requested; the day itself
	// travels separately.
	FilterDate DateFilter = "date"
)

// SourceTotals is one per-source row of the cash dashboard.
type SourceTotals struct {
	Source CashSource `json:"source"`
	// TotalReceived sums every transaction received from this source,
	// regardless of type.
	TotalReceived decimal.Decimal `json:"totalReceived"`
	// CashInReception is the KEEP total for this source minus adjustments,
	// which only exist on the OTHER source.
	CashInReception decimal.Decimal `json:"cashInReception"`
	// TotalSent is the SENT total for this source.
	TotalSent decimal.Decimal `json:"totalSent"`
}

// CashRollup aggregates the ledger over a date window, optionally narrowed to
// a single source. Transactions is sorted most-recent-first; entries with
// equal timestamps keep their ledger order.
type CashRollup struct {
	From    time.Time      `json:"from"`
	To      time.Time      `json:"to"`
	Sources []SourceTotals `json:"sources"`
	// Grand totals across all sources in the window. CashInReception is the
	// KEEP grand total minus adjustments, where an adjustment is a manual
	// SENT posting against SourceOther (cash physically taken out of the
	// reception drawer rather than split away on receipt).
	TotalReceived   decimal.Decimal   `json:"totalReceived"`
	CashInReception decimal.Decimal   `json:"cashInReception"`
	TotalSent       decimal.Decimal   `json:"totalSent"`
	Transactions    []CashTransaction `json:"transactions"`
}
