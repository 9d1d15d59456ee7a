package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransactionType indicates which side of a reception split a ledger
// entry sits on.
type CashTransactionType string

const (
	// CashKeep is money retained at the reception desk.
	CashKeep CashTransactionType = "KEEP"
	// CashSent is money forwarded to the back office.
	CashSent CashTransactionType = "SENT"
)

// CashSource identifies where the money originated.
type CashSource string

const (
	SourceRestaurant  CashSource = "RESTAURANT"
	SourceRoomBooking CashSource = "ROOM_BOOKING"
	SourceBanquet     CashSource = "BANQUET + PARTY"
	SourceOther       CashSource = "OTHER"
)

// KnownCashSources lists every source the dashboard groups by, in display
// order.
var KnownCashSources = []CashSource{
	SourceRestaurant,
	SourceRoomBooking,
	SourceBanquet,
	SourceOther,
}

// CashTransaction is an immutable cash ledger entry. Entries are created by
// the split engine or by direct manual posting and are never mutated or
// deleted afterwards.
type CashTransaction struct {
	TransactionID string              `json:"transactionID"`
	Amount        decimal.Decimal     `json:"amount"`
	Type          CashTransactionType `json:"type"`
	Source        CashSource          `json:"source"`
	Description   string              `json:"description"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// CashSplit is the result of splitting a gross payment between reception and
// office. KeepAmount + SendAmount always equals Gross exactly: the send leg
// is derived by subtraction rather than computed independently, so rounding
// drift cannot open a gap between the two legs.
type CashSplit struct {
	Gross        decimal.Decimal   `json:"gross"`
	KeepPercent  decimal.Decimal   `json:"keepPercent"`
	KeepAmount   decimal.Decimal   `json:"keepAmount"`
	SendAmount   decimal.Decimal   `json:"sendAmount"`
	Transactions []CashTransaction `json:"transactions"`
}
